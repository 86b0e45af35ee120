package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
	// ErrAlreadyRunning is returned by a second Run or Serve.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
