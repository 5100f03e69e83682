package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
)

// identityFromRequest returns the authenticated caller's identity.
// The auth middleware guarantees it is present on protected routes, so a
// miss is a wiring bug and reported as an internal error.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	ident, err := shared.ResolveIdentity(r.Context())
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return auth.Identity{}, false
	}
	return ident, true
}

// pathID parses the {id} path parameter as a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// paginationParams reads page and pageSize from the query string and
// normalizes them. Absent or unparseable values fall through to zero and
// are clamped to the defaults.
func paginationParams(r *http.Request) pagination.Params {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	return pagination.Normalize(page, pageSize)
}
