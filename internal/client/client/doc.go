// Package client contains the device-side transport for the contacts server.
//
// GRPCClient implements Client over the ContactsService gRPC API. An
// interceptor attaches the access token to every call and, when the server
// answers Unauthenticated with "token expired", exchanges the refresh token
// once and retries. gRPC status codes are mapped onto the sentinel errors
// ErrUnauthorized, ErrUnavailable and ErrNotFound; InvalidArgument becomes
// common.ErrorValidation.
//
// InitDatabase and RunMigrations open and migrate the local SQLite cache.
package client
