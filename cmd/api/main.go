package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nzwalks/walks-api/docs"
	"github.com/nzwalks/walks-api/internal/api"
	"github.com/nzwalks/walks-api/internal/api/middleware"
	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
	"github.com/nzwalks/walks-api/internal/core/service"
	"github.com/nzwalks/walks-api/internal/infrastructure/config"
	"github.com/nzwalks/walks-api/internal/infrastructure/db/memory"
	"github.com/nzwalks/walks-api/internal/infrastructure/db/mongo"
	"github.com/nzwalks/walks-api/internal/infrastructure/db/redis"
	"github.com/nzwalks/walks-api/internal/infrastructure/queue"
	"github.com/nzwalks/walks-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Walks API
// @version 1.0
// @description REST API for managing hiking walks, regions and walk difficulties.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	// --- Redis cache (optional) ---
	var redisClient *goredis.Client
	var cache service.ResourceCache
	if cfg.Redis.Disabled {
		log.Info().Msg("redis cache disabled")
	} else {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		cache = redis.NewResourceCache(redisClient, cfg.Redis.CacheTTL)
	}

	// --- Credential store ---
	userRepo, err := buildUserRepository(ctx, cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise credential store")
	}

	// --- Audit trail ---
	auditRepo := mongo.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start()

	// --- Services ---
	regionRepo := mongo.NewRegionRepository(db)
	walkRepo := mongo.NewWalkRepository(db)
	difficultyRepo := mongo.NewDifficultyRepository(db)

	authService := service.NewAuthService(userRepo, service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	}, log)
	regionService := service.NewRegionService(regionRepo, cache, dispatcher, log)
	walkService := service.NewWalkService(walkRepo, regionRepo, difficultyRepo, cache, dispatcher, log)
	difficultyService := service.NewDifficultyService(difficultyRepo, cache, dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Logger: log,
		Auth: middleware.Config{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
		AuthService:  authService,
		Regions:      regionService,
		Walks:        walkService,
		Difficulties: difficultyService,
		Mongo:        db,
		Redis:        redisClient,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	// In-flight requests have finished, so no more entries can be recorded.
	log.Info().Msg("draining audit queue")
	dispatcher.Stop()

	log.Info().Msg("server stopped")
}

// buildUserRepository selects the credential store and seeds it from
// SEED_USERS. Passwords never reach a store in plaintext.
func buildUserRepository(ctx context.Context, cfg *config.Config, db *gomongo.Database, log zerolog.Logger) (ports.UserRepository, error) {
	seedEntries, err := cfg.ParseSeedUsers()
	if err != nil {
		return nil, err
	}

	seeds := make([]*domain.User, 0, len(seedEntries))
	for _, entry := range seedEntries {
		hash, err := service.HashPassword(entry.Password)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, &domain.User{
			ID:           uuid.NewString(),
			Username:     entry.Username,
			PasswordHash: hash,
			Roles:        entry.Roles,
		})
	}

	if cfg.AuthStore == "static" {
		log.Info().Int("users", len(seeds)).Msg("using static credential store")
		return memory.NewUserStore(seeds), nil
	}

	repo := mongo.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	if len(seeds) > 0 {
		if err := repo.Seed(ctx, seeds); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

func ensureIndexes(ctx context.Context, db *gomongo.Database) error {
	if err := mongo.NewWalkRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewAuditRepository(db).EnsureIndexes(ctx)
}
