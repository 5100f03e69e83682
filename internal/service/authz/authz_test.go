package authz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/service/authz"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner is allowed", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, authz.Authorize(owner, owner))
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		t.Parallel()
		err := authz.Authorize(stranger, owner)
		assert.ErrorIs(t, err, authz.ErrNotOwner)
	})

	t.Run("nil caller is denied", func(t *testing.T) {
		t.Parallel()
		err := authz.Authorize(uuid.Nil, owner)
		assert.ErrorIs(t, err, authz.ErrNotOwner)
	})
}
