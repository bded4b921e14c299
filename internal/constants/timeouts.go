// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// Client side timeout for a single remote API round trip
	HTTPTimeout = 10 * time.Second

	// Time allowed to acquire the bolt file lock
	DBOpenTimeout = 1 * time.Second

	// Time allowed for a client to send request headers
	ReadHeaderTimeout = 10 * time.Second

	// Graceful shutdown window for the HTTP server
	ShutdownTimeout = 5 * time.Second
)
