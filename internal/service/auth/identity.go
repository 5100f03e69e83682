package auth

import "github.com/google/uuid"

// Identity is the caller's proven identity, constructed once at the request
// boundary by the identity resolver. Handlers and services receive an
// Identity value and never re-derive who is calling from raw transport
// state.
type Identity struct {
	UserID uuid.UUID
}

// ResolveIdentity turns a verified token claim into the caller's Identity.
// The claims must already have been authenticated by the token service.
// Fails with ErrUnauthenticated when no claim is present or it does not
// carry a usable user ID.
func ResolveIdentity(claims *Claims) (Identity, error) {
	if claims == nil || claims.UserID == uuid.Nil {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{UserID: claims.UserID}, nil
}
