// Package api implements the HTTP surface of the task manager: request
// DTOs, handlers, and the mapping from service errors to HTTP outcomes.
package api
