package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/handler"
	"moviehub/internal/middleware"
	"moviehub/internal/repository"
	"moviehub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// Redis backs throttle counters and the revoked token denylist. The API
	// still serves without it, on in-process fallbacks.
	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-process throttling and skipping token revocation checks", "error", err)
		rdb = nil
	}

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, rdb, cfg)
	platformService := service.NewPlatformService(platformRepo)
	movieService := service.NewMovieService(movieRepo, platformRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)

	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	movieHandler := handler.NewMovieHandler(movieService)
	platformHandler := handler.NewPlatformHandler(platformService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	rates, err := loadThrottleRates(cfg)
	if err != nil {
		logger.Error("invalid throttle rate", "error", err)
		os.Exit(1)
	}
	throttler := middleware.NewThrottler(rdb, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r, authService, throttler, rates,
		authHandler, movieHandler, platformHandler, reviewHandler)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting API server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadThrottleRates(cfg *config.Config) (handler.ThrottleRates, error) {
	var rates handler.ThrottleRates
	for _, entry := range []struct {
		dst  *middleware.Rate
		spec string
	}{
		{&rates.User, cfg.ThrottleUserRate},
		{&rates.Anon, cfg.ThrottleAnonRate},
		{&rates.ReviewCreate, cfg.ThrottleReviewCreate},
		{&rates.ReviewList, cfg.ThrottleReviewList},
		{&rates.PlatformDetail, cfg.ThrottlePlatformDetail},
	} {
		rate, err := middleware.ParseRate(entry.spec)
		if err != nil {
			return handler.ThrottleRates{}, err
		}
		*entry.dst = rate
	}
	return rates, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
