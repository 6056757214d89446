package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Counter reports how many books are stored.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type Server struct {
	serv            *http.Server
	limiter         *httpx.RateLimitMiddleware
	log             zerolog.Logger
	shutdownTimeout time.Duration
}

func New(cfg config.Config, books *book.HTTPHandler, counter Counter, log zerolog.Logger) *Server {
	s := &Server{
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		n, err := counter.Count(r.Context())
		if err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("X-Book-Count", strconv.Itoa(n))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /books", books.Create)
	router.HandleFunc("GET /books", books.List)
	router.HandleFunc("GET /books/{id}", books.Get)
	router.HandleFunc("PUT /books/{id}", books.Update)
	router.HandleFunc("DELETE /books/{id}", books.Delete)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONFail(w, http.StatusNotFound, "Route not found")
	})

	mws := []httpx.Middleware{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	}
	if cfg.RateLimitEnabled() {
		s.limiter = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		mws = append(mws, s.limiter.Middleware)
	}
	mws = append(mws, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

	s.serv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpx.Chain(router, mws...),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.serv.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	group, gCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.log.Info().Str("host", s.serv.Addr).Msg("server started")
		if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gCtx.Done()
		return s.Close()
	})

	return group.Wait()
}

// Close shuts the server down, waiting up to the configured timeout for
// in-flight requests.
func (s *Server) Close() error {
	if s.limiter != nil {
		s.limiter.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.log.Info().Msg("server shutting down")
	return s.serv.Shutdown(ctx)
}
