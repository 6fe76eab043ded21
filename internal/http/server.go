package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/dataset"
	"github.com/reelrank/reelrank/internal/recommend"
)

// Server wires HTTP routing, middleware, and handlers around one dataset
// snapshot.
type Server struct {
	cfg     config.Config
	snap    *dataset.Snapshot
	engine  *recommend.Engine
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, snap *dataset.Snapshot, logger *log.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if logger == nil {
		logger = log.Default()
	}
	if snap == nil {
		snap = &dataset.Snapshot{}
	}

	s := &Server{
		cfg:    cfg,
		snap:   snap,
		engine: recommend.New(snap.Catalog, snap.Ratings),
		logger: logger,
		router: r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/movies/top", s.handleTopMovies)
	s.router.Route("/genres", func(r chi.Router) {
		r.Get("/top", s.handleTopGenres)
		r.Get("/{genre}/movies/top", s.handleTopMoviesInGenre)
	})
	s.router.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/top-genre", s.handleUserTopGenre)
		r.Get("/recommendations", s.handleRecommendations)
	})
}

// Start boots the HTTP server asynchronously.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Movies:      len(s.snap.Catalog),
		RatedMovies: len(s.snap.Ratings),
	})
}
