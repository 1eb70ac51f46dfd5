package httpserver

import (
	"net/http"
	"time"
)

// Server timeouts. Request bodies here are metadata JSON (blob uploads happen
// at a separate boundary), so generous read/write limits still bound a stuck
// connection without cutting off a slow compliance snapshot.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds an HTTP server with this project's defaults.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
