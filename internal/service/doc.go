// Package service contains the application services that compose stores,
// the ownership gate and pagination into the task and user operations
// exposed over HTTP.
package service
