package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/niraulas/egovscan"
)

// DefaultAddr is the default listen address for the API server.
const DefaultAddr = ":8080"

// shutdownTimeout bounds how long Close waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server exposes batch extraction over HTTP. It owns the network listener
// and translates between the JSON wire format and the BatchService.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the bind address. Set before calling Open().
	Addr string

	// Batch performs the actual extraction work.
	Batch egovscan.BatchService

	// Logger receives the access log.
	Logger *slog.Logger
}

// NewServer creates a Server with registered routes and defaults.
func NewServer(batch egovscan.BatchService, logger *slog.Logger) *Server {
	s := &Server{
		Addr:   DefaultAddr,
		Batch:  batch,
		Logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /scrape", s.handleScrape)

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Open binds the listener and begins serving in a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}
