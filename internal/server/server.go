// Package server is the HTTP adapter. It exposes the same game the terminal
// popup plays as a small JSON API, together with metrics and a health check.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/rightclick/internal/logging"
	"github.com/atomicstack/rightclick/internal/logging/events"
)

const (
	// DefaultAddr is used when no listen address is configured.
	DefaultAddr = "127.0.0.1:8765"

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)

// Server serves HTTP until its context is canceled.
type Server interface {
	// Serve blocks until ctx is canceled. It returns nil after a graceful
	// shutdown.
	Serve(ctx context.Context) error

	// IsRunning reports whether the listener is bound and accepting.
	IsRunning() bool

	// Addr is the bound address once running, otherwise the configured one.
	Addr() string

	// Handler is the request router, for in-process use and tests.
	Handler() http.Handler
}

type server struct {
	mux             *http.ServeMux
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	mu              sync.RWMutex
	running         bool
	bound           string
}

// Option configures a Server.
type Option func(*server)

// WithAddr sets the listen address, for example ":8765" or "127.0.0.1:0".
func WithAddr(addr string) Option {
	return func(s *server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithShutdownTimeout bounds how long in-flight requests get to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithSimpleHealth answers GET /healthz with a plain "ok".
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// WithAPI mounts the menu API routes.
func WithAPI(api *API) Option {
	return func(s *server) {
		api.Register(s.mux)
	}
}

// New builds a server from opts.
func New(opts ...Option) Server {
	s := &server{
		addr:            DefaultAddr,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bound != "" {
		return s.bound
	}
	return s.addr
}

func (s *server) Handler() http.Handler {
	return logRequests(s.mux)
}

func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Handler:        s.Handler(),
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
	}

	// bind first so running only flips once connections can be accepted
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.mu.Lock()
	s.bound = listener.Addr().String()
	s.mu.Unlock()
	events.HTTP.Listen(listener.Addr().String())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.mu.Lock()
		s.running = true
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}()

		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			logging.Error(fmt.Errorf("server shutdown: %w", err))
		}
		events.HTTP.Shutdown(err)
		return nil
	})

	return g.Wait()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		events.HTTP.Request(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
