package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/config"
	"github.com/yukikurage/client-task-api/internal/database"
	"github.com/yukikurage/client-task-api/internal/handlers"
	"github.com/yukikurage/client-task-api/internal/logger"
	"github.com/yukikurage/client-task-api/internal/observability/tracing"
	"github.com/yukikurage/client-task-api/internal/ratelimit"
	"github.com/yukikurage/client-task-api/internal/repository"
	"github.com/yukikurage/client-task-api/internal/router"
	"github.com/yukikurage/client-task-api/internal/services"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns every resource the server opens so that its defers release them
// on both the error and the shutdown path.
func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting Client Task API",
		slog.String("gin_mode", cfg.GinMode),
		slog.String("db_driver", cfg.DBDriver),
	)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, log, cfg.OTLPEndpoint, cfg.ServiceName, cfg.GinMode)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("tracing shutdown error", slog.String("error", err.Error()))
		}
	}()

	// Connect to database
	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	store := repository.NewStore(db)
	cascade := services.NewCascadeCoordinator(log)
	ready := map[string]handlers.Pinger{"database": store}

	// Rate limiting is shared through Redis when configured
	var authLimiter ratelimit.Limiter
	if addr := cfg.RedisAddr(); addr != "" {
		redisClient, err := ratelimit.NewRedisClient(ctx, addr)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		authLimiter = ratelimit.NewRedisLimiter(redisClient, "ratelimit:auth:", cfg.AuthRateLimit, cfg.AuthRateWindow)
		ready["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
		defer memLimiter.Stop()
		authLimiter = memLimiter
	}

	engine := router.New(router.Deps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        services.NewAuthService(store),
		Tokens:      services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		Clients:     services.NewClientService(store, cascade),
		Tasks:       services.NewTaskService(store, cascade),
		Comments:    services.NewCommentService(store),
		Stats:       services.NewStatsService(store),
		AuthLimiter: authLimiter,
		Ready:       ready,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(engine, cfg.ServiceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server starting",
		slog.String("port", cfg.Port),
		slog.Bool("cors_allow_all", cfg.AllowAllOrigins()),
		slog.Int("auth_rate_limit", cfg.AuthRateLimit),
		slog.Duration("auth_rate_window", cfg.AuthRateWindow),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	var runErr error
	select {
	case <-sigChan:
		log.Info("shutdown signal received")
	case err := <-serveErr:
		runErr = fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
	return runErr
}
