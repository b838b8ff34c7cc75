package server

import "time"

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout applies when the config leaves SHUTDOWN_TIMEOUT unset; a var for tests to override.
var shutdownTimeout = 10 * time.Second
