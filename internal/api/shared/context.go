package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/phrazzld/taskmgr-api/internal/service/auth"
)

// ContextKey is the key type for context values set by this package.
type ContextKey string

// Context keys for various values
const (
	// IdentityContextKey is the context key for the caller's Identity
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// WithIdentity returns a new context carrying the caller's resolved
// Identity. Only the authentication middleware sets this.
func WithIdentity(ctx context.Context, ident auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, ident)
}

// ResolveIdentity extracts the caller's Identity from the request context.
// This is the single seam through which handlers learn who is calling.
// Fails with auth.ErrUnauthenticated when the request never passed the
// authentication middleware.
func ResolveIdentity(ctx context.Context) (auth.Identity, error) {
	ident, ok := ctx.Value(IdentityContextKey).(auth.Identity)
	if !ok {
		return auth.Identity{}, auth.ErrUnauthenticated
	}
	return ident, nil
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string (16 bytes).
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate random trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
