// Package server is the composition root: it opens the configured store,
// builds services and handlers on top of it, mounts the routes, and runs
// the HTTP server until SIGINT/SIGTERM.
//
//	config → repository.Store → services → handlers → chi router
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/tuiter/internal/auth"
	"github.com/sakif/tuiter/internal/config"
	"github.com/sakif/tuiter/internal/handler"
	"github.com/sakif/tuiter/internal/middleware"
	"github.com/sakif/tuiter/internal/repository"
	"github.com/sakif/tuiter/internal/repository/mongodb"
	sqliteRepo "github.com/sakif/tuiter/internal/repository/sqlite"
	"github.com/sakif/tuiter/internal/service"
)

// Server owns the store for its whole life and closes it after shutdown.
type Server struct {
	router  *chi.Mux
	config  config.Config
	logger  *slog.Logger
	store   repository.Store
	metrics *middleware.Metrics
}

// New opens the store named by cfg.StorageDriver and wires everything.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s, err := NewWithStore(cfg, store, logger)
	if err != nil {
		store.Close()
		return nil, err
	}
	return s, nil
}

// NewWithStore wires the server around an already-open store. Tests use it
// with an in-memory SQLite store.
func NewWithStore(cfg config.Config, store repository.Store, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  logger,
		store:   store,
		metrics: middleware.NewMetrics(),
	}
	if err := s.setupRoutes(); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}
	return s, nil
}

func openStore(ctx context.Context, cfg config.Config) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		store, err := mongodb.New(ctx, mongodb.Config{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.MongoTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("opening mongo store: %w", err)
		}
		return store, nil

	case config.DriverSQLite:
		if cfg.DBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes mounts every route. Middleware order:
//  1. RequestID, RealIP  (request metadata the logger reads)
//  2. Logger, metrics    (observe the final status)
//  3. Recoverer          (innermost, so a panic is logged and counted as 500)
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(s.metrics.Instrument)
	s.router.Use(chimiddleware.Recoverer)

	passwords := auth.NewPasswordService(s.config.BcryptCost)

	users := handler.NewUserHandler(service.NewUserService(s.store, passwords, s.logger), s.logger)
	tuits := handler.NewTuitHandler(service.NewTuitService(s.store, s.logger), s.logger)
	likes := handler.NewLikeHandler(service.NewLikeService(s.store, s.logger), s.logger)
	bookmarks := handler.NewBookmarkHandler(service.NewBookmarkService(s.store, s.logger), s.logger)
	follows := handler.NewFollowerHandler(service.NewFollowerService(s.store, s.logger), s.logger)
	messages := handler.NewMessageHandler(service.NewMessageService(s.store, s.logger), s.logger)
	health := handler.NewHealthHandler(s.store, s.logger)

	s.router.Get("/health", health.HandleHealth)
	s.router.Handle("/metrics", s.metrics.Handler())

	var tokens *auth.TokenService
	if s.config.AuthEnabled() {
		var err error
		tokens, err = auth.NewTokenService(s.config.JWTSecret, s.config.JWTTTL)
		if err != nil {
			return fmt.Errorf("creating token service: %w", err)
		}
	} else {
		s.logger.Warn("JWT_SECRET not set; /api/auth routes are disabled")
	}

	s.router.Route("/api", func(r chi.Router) {
		// users
		r.Get("/users", users.HandleList)
		r.Post("/users", users.HandleCreate)
		r.Get("/users/{uid}", users.HandleGet)
		r.Delete("/users/{uid}", users.HandleDelete)
		r.Delete("/users/username/{username}", users.HandleDeleteByUsername)

		// tuits
		r.Get("/tuits", tuits.HandleList)
		r.Get("/tuits/{tid}", tuits.HandleGet)
		r.Put("/tuits/{tid}", tuits.HandleUpdate)
		r.Delete("/tuits/{tid}", tuits.HandleDelete)
		r.Get("/users/{uid}/tuits", tuits.HandleListByUser)
		r.Post("/users/{uid}/tuits", tuits.HandleCreate)

		// likes
		r.Get("/likes", likes.HandleList)
		r.Get("/users/{uid}/likes", likes.HandleListByUser)
		r.Post("/users/{uid}/likes/{tid}", likes.HandleLike)
		r.Delete("/users/{uid}/likes/{tid}", likes.HandleUnlike)
		r.Get("/tuits/{tid}/likes", likes.HandleListByTuit)

		// bookmarks
		r.Get("/bookmarks", bookmarks.HandleList)
		r.Get("/users/{uid}/bookmarks", bookmarks.HandleListByUser)
		r.Get("/users/{uid}/bookmarks/latest", bookmarks.HandleLatestByUser)
		r.Post("/users/{uid}/bookmarks/{tid}", bookmarks.HandleBookmark)
		r.Delete("/users/{uid}/bookmarks/{tid}", bookmarks.HandleUnbookmark)

		// followers
		r.Get("/followers", follows.HandleList)
		r.Get("/followers/topFollowed", follows.HandleTopFollowed)
		r.Get("/users/{uid}/following", follows.HandleFollowing)
		r.Get("/users/{uid}/followers", follows.HandleFollowers)
		r.Post("/users/{uid}/following/{followee}", follows.HandleFollow)
		r.Delete("/users/{uid}/following/{followee}", follows.HandleUnfollow)

		// messages
		r.Get("/messages", messages.HandleList)
		r.Get("/users/{uid}/messages/sent", messages.HandleSent)
		r.Get("/users/{uid}/messages/received", messages.HandleReceived)
		r.Get("/users/{uid}/messages/recent", messages.HandleRecent)
		r.Post("/users/{uid}/messages/{id}", messages.HandleSend)
		r.Delete("/users/{uid}/messages/{id}", messages.HandleDelete)

		if tokens != nil {
			authHandler := handler.NewAuthHandler(
				service.NewAuthService(s.store, tokens, passwords, s.logger),
				s.logger,
			)
			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", authHandler.HandleLogin)
				r.Post("/logout", authHandler.HandleLogout)
				r.With(auth.RequireAuth(tokens)).Get("/profile", authHandler.HandleProfile)
			})
		}
	})

	return nil
}

// Close releases the store. Start calls it on the way out.
func (s *Server) Close() error {
	return s.store.Close()
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests for up
// to 30 seconds and closes the store.
func (s *Server) Start() error {
	defer s.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("storage", s.config.StorageDriver),
			slog.Bool("auth", s.config.AuthEnabled()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
