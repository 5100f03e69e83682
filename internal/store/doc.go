// Package store provides abstractions for data persistence.
// The interfaces here are implemented by the postgres platform package and
// by in-memory fakes in tests, keeping ownership and pagination logic
// testable without a real database.
package store
