package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIdentity(t *testing.T) {
	t.Parallel()

	t.Run("valid claims", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		ident, err := ResolveIdentity(&Claims{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, userID, ident.UserID)
	})

	t.Run("nil claims", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveIdentity(nil)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("claims without user ID", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveIdentity(&Claims{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
