package service

import "errors"

// Classified errors surfaced to the transport layer. Handlers map these to
// HTTP status codes; anything else is an internal error.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
)

// Identity is the authenticated caller: a local user ID and the email
// verified by the identity provider.
type Identity struct {
	Email  string
	UserID int64
}
