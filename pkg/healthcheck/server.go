// Package healthcheck provides a minimal HTTP health check server.
package healthcheck

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

// Server is a minimal HTTP server for liveness and readiness checks.
type Server struct {
	server *http.Server
	ready  atomic.Bool
}

// New creates a new lightweight health check server. /health answers
// as soon as the process is up; /ready answers 200 only after the
// reference dataset has loaded.
func New(addr string) *Server {
	s := &Server{}

	mux := http.NewServeMux()

	// Minimal response, no allocations
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if !s.ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("loading"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       2 * time.Second,
		WriteTimeout:      2 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		MaxHeaderBytes:    1 << 10, // 1KB
	}

	return s
}

// SetReady flips the readiness state reported by /ready.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Start starts the health check server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
