// Package app assembles the HTTP server from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lenasun/kebab-api/internal/adapter/mongodb"
	kebabrepo "github.com/lenasun/kebab-api/internal/adapter/mongodb/kebab"
	songrepo "github.com/lenasun/kebab-api/internal/adapter/mongodb/song"
	"github.com/lenasun/kebab-api/internal/app/seeder"
	"github.com/lenasun/kebab-api/internal/config"
	"github.com/lenasun/kebab-api/internal/service/catalog"
	"github.com/lenasun/kebab-api/internal/service/kebab"
	"github.com/lenasun/kebab-api/internal/transport/middleware"
	"github.com/lenasun/kebab-api/internal/transport/rest"
)

const disconnectTimeout = 5 * time.Second

// Run is the application entry point. It loads configuration, connects to
// MongoDB, seeds the song collection, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Name),
	)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	client, err := mongodb.NewClient(connectCtx, cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Warn("disconnect database", slog.String("error", err.Error()))
		}
	}()

	db := client.Database(cfg.Database.Name)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	songs := songrepo.New(db)
	coordinator := seeder.NewCoordinator(logger, songs, cfg.Seed)
	catalogSvc := catalog.NewService(logger, songs)
	kebabSvc := kebab.NewService(logger, kebabrepo.New(db))

	warmUp(ctx, logger, coordinator, catalogSvc)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Songs:       rest.NewSongHandler(catalogSvc, logger),
		Kebabs:      rest.NewKebabHandler(kebabSvc, logger),
		Health:      rest.NewHealthHandler(mongodb.NewPinger(client), coordinator, catalogSvc, BuildVersion()),
		SongsReady: []middleware.ReadyFunc{
			func(ctx context.Context) error {
				_, err := coordinator.SeedIfEmpty(ctx)
				return err
			},
			catalogSvc.Warm,
		},
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, logger, srv, ln, cfg.Server.ShutdownTimeout)
}

// warmUp seeds and loads the genre cache before the first request. Failures
// are logged only; the song routes retry both on demand.
func warmUp(ctx context.Context, logger *slog.Logger, coordinator *seeder.Coordinator, catalogSvc *catalog.Service) {
	if _, err := coordinator.SeedIfEmpty(ctx); err != nil {
		logger.Warn("startup seed failed, will retry on request", slog.String("error", err.Error()))
		return
	}
	if err := catalogSvc.Warm(ctx); err != nil {
		logger.Warn("startup genre load failed, will retry on request", slog.String("error", err.Error()))
	}
}

// serve runs srv on ln until ctx is cancelled or the server fails, then
// shuts it down within shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
