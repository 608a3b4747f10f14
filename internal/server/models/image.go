package models

import "time"

// Image upload states.
const (
	UploadPending  = "pending"
	UploadComplete = "uploaded"
)

// Image describes a photo object in the bucket. The bytes live in object
// storage under Key.
type Image struct {
	Key          string
	FileName     string
	ContentType  string
	UploadStatus string
	CreatedAt    time.Time
}
