// Package common contains shared constants and sentinel errors used across
// gophcontacts components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ImageKeyPrefix is the object key prefix under which person photos are stored.
const ImageKeyPrefix = "images/"

// Person field limits shared by client and server validation.
const (
	NameMinLength  = 2
	NameMaxLength  = 64
	PhoneMaxLength = 32
)
