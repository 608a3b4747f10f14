// Package models defines client-side data models used by the contacts CLI.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/validation"
)

// ImageState names which of the two image fields holds the photo.
type ImageState int

const (
	ImageEmpty ImageState = iota
	ImageLocalOnly
	ImageRemoteOnly
	ImageLocalAndRemote
)

func (s ImageState) String() string {
	switch s {
	case ImageEmpty:
		return "empty"
	case ImageLocalOnly:
		return "local"
	case ImageRemoteOnly:
		return "remote"
	case ImageLocalAndRemote:
		return "local+remote"
	default:
		return fmt.Sprintf("ImageState(%d)", int(s))
	}
}

// Person is a contact. LocalImage is an absolute path on this device,
// RemoteImage an opaque reference issued by the remote image store.
type Person struct {
	ID          string  `validate:"required,uuid"`
	FirstName   string  `validate:"required,min=2,max=64"`
	LastName    string  `validate:"required,min=2,max=64"`
	Email       string  `validate:"omitempty,email"`
	Phone       string  `validate:"omitempty,max=32"`
	LocalImage  *string `validate:"omitempty"`
	RemoteImage *string `validate:"omitempty"`
}

func (p Person) Validate() error {
	return validation.Struct(p)
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Person) HasLocalImage() bool {
	return p.LocalImage != nil && *p.LocalImage != ""
}

func (p Person) HasRemoteImage() bool {
	return p.RemoteImage != nil && *p.RemoteImage != ""
}

func (p Person) ImageState() ImageState {
	switch local, remote := p.HasLocalImage(), p.HasRemoteImage(); {
	case local && remote:
		return ImageLocalAndRemote
	case local:
		return ImageLocalOnly
	case remote:
		return ImageRemoteOnly
	default:
		return ImageEmpty
	}
}

// WithLocalImage returns a copy of p with LocalImage set to path.
// An empty path clears the field.
func (p Person) WithLocalImage(path string) Person {
	p.LocalImage = optional(path)
	return p
}

// WithRemoteImage returns a copy of p with RemoteImage set to ref.
// An empty ref clears the field.
func (p Person) WithRemoteImage(ref string) Person {
	p.RemoteImage = optional(ref)
	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
