package middleware

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/platform/logger"
)

// Recover converts panics escaping a handler into the generic 500 JSON
// response. The panic value is logged with the request's trace context and
// never reaches the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log := logger.FromContext(r.Context())
				log.Error("panic recovered in handler",
					"panic", p,
					"path", r.URL.Path,
					"method", r.Method)
				shared.RespondWithInternalError(w, r, fmt.Errorf("panic: %v", p))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
