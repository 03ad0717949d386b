package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// NewServer applies production timeouts around the handler. Read/write
// timeouts do not apply to hijacked websocket connections, so they are safe
// for the /ws endpoint.
func NewServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Shutdown stops accepting new connections and waits for in-flight requests
// up to the timeout.
func Shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.Shutdown(ctx)
}
