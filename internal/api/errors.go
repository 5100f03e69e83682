package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/service/authz"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// MapErrorToStatusCode is the single mapping from service and store errors
// to HTTP status codes. Ownership denials map to 404, the same status as a
// genuinely missing resource, so the API never reveals whether a foreign
// resource exists.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, authz.ErrNotOwner):
		return http.StatusNotFound
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError writes the response for a failed service call.
// notFoundMessage is the endpoint's 404 body and may be empty for endpoints
// that return a bare 404. Unauthorized, bad-request and internal failures
// use fixed wording.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	status := MapErrorToStatusCode(err)

	switch status {
	case http.StatusNotFound:
		shared.RespondWithError(w, r, http.StatusNotFound, notFoundMessage)
	case http.StatusUnauthorized:
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
	case http.StatusBadRequest:
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	default:
		shared.RespondWithInternalError(w, r, err)
	}
}
