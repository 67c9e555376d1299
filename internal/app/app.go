package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/arlearn/admin-backend/internal/adapter/postgres"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/account"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/armodel"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/quiz"
	"github.com/arlearn/admin-backend/internal/config"
	"github.com/arlearn/admin-backend/internal/service/auth"
	"github.com/arlearn/admin-backend/internal/service/catalog"
	"github.com/arlearn/admin-backend/internal/transport/middleware"
	"github.com/arlearn/admin-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, runs migrations, wires services
// and handlers together, and serves HTTP until ctx is cancelled or a
// termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	accountRepo := account.New(pool)
	modelRepo := armodel.New(pool)
	quizRepo := quiz.New(pool)

	authSvc := auth.NewService(logger, accountRepo)
	catalogSvc := catalog.NewService(logger, modelRepo, quizRepo)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupEvery)
	defer rateLimiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authSvc, logger),
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		Models:  rest.NewModelsHandler(catalogSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),

		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		RateLimiter: rateLimiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
