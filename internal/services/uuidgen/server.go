// Package uuidgen serves the UUID generator page. Every request, whatever its
// method or path, receives the same pre-rendered document.
package uuidgen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/uuidgen/internal/platform/httpx"
	"github.com/louisbranch/uuidgen/internal/platform/observability"
	"github.com/louisbranch/uuidgen/internal/platform/timeouts"
	"github.com/louisbranch/uuidgen/internal/services/uuidgen/page"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the page service.
type Config struct {
	HTTPAddr string
	// Logger receives request log lines. Nil uses log.Default().
	Logger *log.Logger
	// TracerProvider records request spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the page HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler returns the handler answering every request with document.
func NewHandler(document []byte, cfg Config) http.Handler {
	body := append([]byte(nil), document...)
	shim := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteDocument(w, body)
	})
	return httpx.Chain(shim,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(cfg.TracerProvider),
		observability.RequestLogger(cfg.Logger),
	)
}

// NewServer validates config, renders the document and constructs a server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// The document outlives ctx; a cancelled startup still builds it.
	document, err := page.Render(context.WithoutCancel(ctx), page.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("render uuidgen page: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(document, cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe listens on the configured address and serves until context
// cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("uuidgen server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server
// stop. Cancellation triggers a graceful shutdown bounded by timeouts.Shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("uuidgen server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	log.Printf("uuidgen listening on %s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown uuidgen http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve uuidgen http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
