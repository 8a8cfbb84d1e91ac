// Package server owns the transport lifecycle: it constructs the HTTP
// server around the request router and handles graceful shutdown on
// SIGTERM, SIGINT, and SIGQUIT.
package server
