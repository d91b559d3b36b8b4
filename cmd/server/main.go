package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/hub"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamevault/backend/docs" // Registers the generated OpenAPI document with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           GameVault API
// @version         1.0
// @description     Curated pre-game profiles and scored post-game reviews.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated successfully.")

	var views cache.Views = cache.NopViews{}
	if cfg.RedisURL != "" {
		redisViews, err := cache.NewRedisViews(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer redisViews.Close()
		views = redisViews
		logger.Info("View cache backed by Redis", "ttl", cfg.CacheTTL)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	events := hub.NewHub()
	guard := content.NewRoleGuard(auth.NewUserRoles(db))
	repo := content.NewRepository(db, guard, cache.NewInvalidator(views, events, logger), logger)

	games := handler.NewGameHandler(repo, views, events, catalog.NewSelector(loc), logger)
	users := handler.NewUserHandler(db, cfg.JWTSecret, cfg.JWTTTL, logger)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := auth.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)
	go loginLimiter.Run(ctx, time.Minute, 10*time.Minute)

	handler.RegisterRoutes(router, games, users, handler.RouteConfig{
		JWTSecret:    cfg.JWTSecret,
		Guard:        guard,
		LoginLimiter: loginLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,

		// Open event streams end when the process is told to stop.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server is running", "addr", cfg.HTTPAddr, "swagger", "/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
