// Package server exposes loaded translations over a read-only HTTP and
// WebSocket API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/FocuswithJustin/bible-io/internal/logging"
	"github.com/FocuswithJustin/bible-io/internal/source"
)

// Options configures a Server.
type Options struct {
	Addr           string
	ReadTimeout    time.Duration
	AllowedOrigins []string
	// ShutdownTimeout bounds graceful shutdown; zero means 30 seconds.
	ShutdownTimeout time.Duration
}

// Server serves lookups against a Library.
type Server struct {
	lib      *source.Library
	opts     Options
	upgrader websocket.Upgrader
	clients  atomic.Int64
}

// New returns a Server for lib.
func New(lib *source.Library, opts Options) *Server {
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 30 * time.Second
	}
	s := &Server{lib: lib, opts: opts}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	return logging.CombinedMiddleware(securityHeadersMiddleware(corsMiddleware(s.opts.AllowedOrigins, s.routes())))
}

func (s *Server) routes() http.Handler {
	router := httprouter.New()

	router.RedirectFixedPath = false
	router.RedirectTrailingSlash = false
	router.NotFound = http.HandlerFunc(notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthz", s.healthHandler)
	router.HandlerFunc(http.MethodGet, "/v1/translations", s.listTranslationsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/translations/:id", s.translationHandler)
	router.HandlerFunc(http.MethodGet, "/v1/translations/:id/:book", s.bookHandler)
	router.HandlerFunc(http.MethodGet, "/v1/translations/:id/:book/:chapter", s.chapterHandler)
	router.HandlerFunc(http.MethodGet, "/v1/translations/:id/:book/:chapter/:verse", s.verseHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ref/:id", s.referenceHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ws", s.websocketHandler)

	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
		WriteTimeout:      2 * s.opts.ReadTimeout,
		IdleTimeout:       time.Minute,
		ErrorLog:          slog.NewLogLogger(logging.GetLogger().Handler(), slog.LevelError),
	}

	shutdownError := make(chan error, 1)
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		logging.Info("shutting down server", "addr", srv.Addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	logging.ServerStartup(srv.Addr, s.lib.Len(), "translation_ids", s.lib.IDs())

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownError; err != nil {
		return err
	}

	logging.Info("stopped server", "addr", srv.Addr)
	return nil
}
