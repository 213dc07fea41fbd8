package domain

import "errors"

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("forbidden")

// Identity is the decoded payload of a verified bearer token. It is threaded
// explicitly through handlers and services — never stored in package state —
// so the authorization core stays testable under concurrent requests.
//
// The identity trusts the token signature, not the users collection: a user
// whose role changed after issuance keeps the stale role until expiry.
type Identity struct {
	UserID string
	Role   Role
}
