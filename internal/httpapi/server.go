package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lexicheck/symspell/internal/symspell"
)

// Server is the corrector's HTTP front end: lookup/correct/stats routes
// behind CORS and request-logging middleware, with graceful shutdown on
// SIGINT/SIGTERM.
type Server struct {
	addr       string
	log        *zap.Logger
	router     *mux.Router
	httpServer *http.Server
}

// NewServer builds a Server bound to addr (host:port), serving corrector.
func NewServer(addr string, corrector *symspell.Corrector, log *zap.Logger) *Server {
	s := &Server{addr: addr, log: log}
	s.setupRoutes(corrector)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes(corrector *symspell.Corrector) {
	s.router = mux.NewRouter()
	h := &Handler{Corrector: corrector}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/lookup", h.Lookup).Methods(http.MethodGet)
	api.HandleFunc("/correct", h.Correct).Methods(http.MethodPost)
	api.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)

	s.router.Use(CORS())
	s.router.Use(RequestLogging(s.log))
}

// Start runs the server until SIGINT/SIGTERM, then shuts it down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", s.addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("httpapi: server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
