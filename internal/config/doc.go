// Package config defines the application configuration structure and loads
// it from environment variables and an optional config file. Secrets (the
// JWT signing key, the database URL) are configuration values, never
// literals in source.
package config
