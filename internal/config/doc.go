// Package config loads the immutable application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (env > flags > JSON file), and any
// field left unset by every source receives a development default. The
// resulting StructuredConfig is constructed once at process start and passed
// by value into the layers that need it; no package-level mutable state is
// involved.
package config
