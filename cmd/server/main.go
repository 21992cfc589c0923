package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"go.pilab.hu/credstore/cache"
	redistore "go.pilab.hu/credstore/cache/redis"
	"go.pilab.hu/credstore/config"
	"go.pilab.hu/credstore/internal/sweeper"
	"go.pilab.hu/credstore/log"
	"go.pilab.hu/credstore/mongodb"
	"go.pilab.hu/credstore/services"
	"go.pilab.hu/credstore/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		zerolog.New(os.Stderr).With().Timestamp().Logger().
			Fatal().Err(err).Msg("failed to load configuration")
	}

	logLevel, parseErr := zerolog.ParseLevel(cfg.LogLevel)
	if parseErr != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := log.NewZerologAdapter(logLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "starting credstore server", map[string]interface{}{
		"mongo_db_name":  cfg.MongoDBName,
		"redis_enabled":  cfg.RedisAddr != "",
		"sweep_interval": cfg.SweepInterval.String(),
	})

	tp, err := tracing.InitTracerProvider("credstore")
	if err != nil {
		logger.Error(ctx, "failed to initialize tracer provider", err)
		os.Exit(1)
	}
	defer tp.Shutdown(context.Background())

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Error(ctx, "failed to connect to MongoDB", err)
		os.Exit(1)
	}
	defer client.Close(context.Background())
	db := client.Database()

	var tokenCache cache.TokenCache
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		tokenCache = redistore.NewTokenCache(rdb, "credstore")
	} else {
		tokenCache = cache.NewMemoryTokenCache()
	}
	defer tokenCache.Close()

	userRepo, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		logger.Error(ctx, "failed to initialize user repository", err)
		os.Exit(1)
	}
	identityRepo, err := mongodb.NewFederatedIdentityRepository(ctx, db)
	if err != nil {
		logger.Error(ctx, "failed to initialize federated identity repository", err)
		os.Exit(1)
	}
	sessionRepo, err := mongodb.NewSessionTokenRepository(ctx, db)
	if err != nil {
		logger.Error(ctx, "failed to initialize session token repository", err)
		os.Exit(1)
	}

	store := services.NewStore(services.Repositories{
		EphemeralTokens: mongodb.NewEphemeralTokenRepository(db),
		Accounts:        mongodb.NewAccountRepository(db),
		Users:           userRepo,
		Delegations:     mongodb.NewBotDelegationRepository(db),
		Identities:      identityRepo,
		Credentials:     mongodb.NewCredentialRepository(db),
		Scopes:          mongodb.NewScopeRepository(db),
		SessionTokens:   sessionRepo,
	}, tokenCache)

	logger.Info(ctx, "credential store ready")

	sweep := sweeper.New(store.EphemeralTokens, cfg.SweepInterval, logger)
	sweep.Run(ctx)

	logger.Info(context.Background(), "shutting down")
}
