// Package config defines the application configuration structures and
// loading logic. Configuration is read from environment variables and an
// optional config file, then validated before use.
package config
