// Package health exposes a minimal HTTP endpoint that reports the bot
// process as alive.
package health

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Server answers liveness probes over HTTP.
type Server struct {
	srv *http.Server
}

// NewServer creates a health server listening on addr.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Bot is running")
	})

	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		log.Printf("Health check listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Health server error: %v", err)
		}
	}()
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
