// Package authz implements the ownership gate: the authorization check
// comparing a resource's owner to the caller. Every task-scoped operation
// passes through Authorize before observing or mutating a resource.
package authz

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotOwner indicates the caller does not own the target resource.
//
// The HTTP layer deliberately surfaces this as not-found rather than
// forbidden, so a non-owner cannot learn whether the resource exists.
// The mapping is applied uniformly to reads and writes.
var ErrNotOwner = errors.New("caller does not own this resource")

// Authorize decides whether the caller may act on a resource.
// Returns nil iff callerID equals ownerID, ErrNotOwner otherwise.
func Authorize(callerID, ownerID uuid.UUID) error {
	if callerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
