package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gosonic/gosonic/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr              string
	scrobble          bool
	readHeaderTimeout time.Duration
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the listen address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithScrobble enables or disables scrobble submissions after streams
func WithScrobble(enabled bool) Option {
	return func(c *config) {
		c.scrobble = enabled
	}
}

// WithReadHeaderTimeout sets the timeout for reading request headers
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readHeaderTimeout = d
	}
}

// Server is the local streaming proxy. It injects Subsonic credentials into
// upstream requests so players on localhost never see them.
type Server struct {
	*http.Server
}

// NewServer creates the proxy server
func NewServer(
	ctx context.Context,
	client interfaces.SubsonicClient,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:              "localhost:4533",
		scrobble:          true,
		readHeaderTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Media endpoints
	mediaHandler := NewMediaHandler(client, cfg.scrobble)
	router.Get("/api/stream/{id}", mediaHandler.HandleStream)
	router.Get("/api/cover/{id}", mediaHandler.HandleCover)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: cfg.readHeaderTimeout,
		},
	}

	return server, nil
}
