package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// InternalErrorResponse is the generic JSON body returned for any
// unexpected internal failure. Internal details never leak to the client.
type InternalErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// MethodNotAllowedResponse is the JSON body returned when a known path is
// hit with an unsupported HTTP method.
type MethodNotAllowedResponse struct {
	Error          string   `json:"error"`
	Message        string   `json:"message"`
	AllowedMethods []string `json:"allowedMethods"`
	Path           string   `json:"path"`
	StatusCode     int      `json:"statusCode"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a plain-text error response with the given status
// code and reason. Client-caused failures (4xx) carry a bare reason string
// as the body; the message may be empty.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if message != "" {
		if _, err := w.Write([]byte(message)); err != nil {
			slog.Error("failed to write error response", "error", err)
		}
	}
}

// RespondWithInternalError logs the underlying error with request context
// and writes the generic 500 JSON body. The raw error string is never
// included in the response.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := GetTraceID(r.Context())

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	slog.LogAttrs(r.Context(), slog.LevelError, "internal server error", attrs...)

	RespondWithJSON(w, r, http.StatusInternalServerError, InternalErrorResponse{
		Error:      "Internal Server Error",
		Message:    "An unexpected error occurred while processing your request",
		StatusCode: http.StatusInternalServerError,
	})
}
