// Package models defines server-side records persisted in PostgreSQL.
package models

import "time"

// Person is a contact as stored by the remote person store. LocalImage is
// kept verbatim as posted by the device; the server never dereferences it.
type Person struct {
	ID          string  `validate:"required,uuid"`
	FirstName   string  `validate:"required,min=2,max=64"`
	LastName    string  `validate:"required,min=2,max=64"`
	Email       string  `validate:"omitempty,email"`
	Phone       string  `validate:"omitempty,max=32"`
	LocalImage  *string `validate:"omitempty"`
	RemoteImage *string `validate:"omitempty"`
	UpdatedAt   time.Time
}
