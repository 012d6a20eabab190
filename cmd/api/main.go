package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/threadgenius/threadgenius/internal/api"
	"github.com/threadgenius/threadgenius/internal/auth"
	"github.com/threadgenius/threadgenius/internal/config"
	"github.com/threadgenius/threadgenius/internal/database"
	"github.com/threadgenius/threadgenius/internal/generation"
	"github.com/threadgenius/threadgenius/internal/llm"
	"github.com/threadgenius/threadgenius/internal/middleware"
	"github.com/threadgenius/threadgenius/internal/presets"
	"github.com/threadgenius/threadgenius/internal/profile"
	"github.com/threadgenius/threadgenius/internal/quota"
	iredis "github.com/threadgenius/threadgenius/internal/redis"
	"github.com/threadgenius/threadgenius/internal/server"
	"github.com/threadgenius/threadgenius/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	ctx := context.Background()

	// PostgreSQL
	pool, err := database.NewPostgresPool(ctx, cfg.DB)
	if err != nil {
		slog.Error("connecting to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DB.DSN(), "migrations"); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	// Redis
	redisClient, err := iredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Auth
	jwtManager := auth.NewJWTManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authSvc := auth.NewService(jwtManager, redisClient)
	userRepo := users.NewRepository(pool)
	userSvc := users.NewService(userRepo)
	authHandler := auth.NewHandler(authSvc, userSvc)

	// Profiles
	profileRepo := profile.NewRepository(pool)
	profileSvc := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileSvc)

	// Quota
	usageStore := quota.NewStore(pool)
	tracker := quota.NewTracker(usageStore, cfg.Quota.FreeDailyLimit)
	quotaHandler := quota.NewHandler(tracker)

	// Generation
	completer := llm.NewOpenAIClient(cfg.OpenAI)
	genRepo := generation.NewRepository(pool)
	genSvc := generation.NewService(genRepo, profileSvc, tracker, completer, cfg.OpenAI)
	genHandler := generation.NewHandler(genSvc)

	// Brute-force protection on the public auth routes.
	authLimiter := middleware.NewRateLimiter(redisClient, "auth", 10, 60)

	router := api.NewRouter(pool, redisClient, api.RouterConfig{
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthRateLimiter:    authLimiter.Middleware,
	}, api.HandlerSet{
		Register: authHandler.Register,
		Login:    authHandler.Login,
		Refresh:  authHandler.Refresh,
		Logout:   authHandler.Logout,

		GetProfile:    profileHandler.Get,
		UpdateProfile: profileHandler.Update,

		ListTones:  presets.ListTones,
		ListNiches: presets.ListNiches,

		GetUsage: quotaHandler.GetUsage,

		GenerateTweet:  genHandler.GenerateTweet,
		GenerateThread: genHandler.GenerateThread,
		GenerateBio:    genHandler.GenerateBio,
		GenerateIdeas:  genHandler.GenerateIdeas,
		History:        genHandler.History,
		ListIdeas:      genHandler.ListIdeas,
		UpdateIdea:     genHandler.UpdateIdea,

		AuthMiddleware: auth.Middleware(authSvc),
	})

	// Start server
	srv := server.New(cfg.Server, router)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
