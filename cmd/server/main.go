// @title						Theater API
// @version					1.0
// @description				Catalog of theater and film productions, actors and the roles that link them.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theater-demo/theater-api/internal/api"
	"github.com/theater-demo/theater-api/internal/api/handler"
	"github.com/theater-demo/theater-api/internal/core/service"
	"github.com/theater-demo/theater-api/internal/infrastructure/crypto"
	"github.com/theater-demo/theater-api/internal/infrastructure/db/mongo"
	"github.com/theater-demo/theater-api/internal/infrastructure/db/redis"
	"github.com/theater-demo/theater-api/internal/infrastructure/queue"
	"github.com/theater-demo/theater-api/internal/pkg/config"
	"github.com/theater-demo/theater-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "theater-api",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; tokens are signed with an empty key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	productionRepo := mongo.NewProductionRepository(db)
	actorRepo := mongo.NewActorRepository(db)
	roleRepo := mongo.NewRoleRepository(db)
	userRepo := mongo.NewUserRepository(db)
	auditRepo := mongo.NewAuditRepository(db)

	if err := mongo.EnsureIndexes(ctx, productionRepo, actorRepo, roleRepo, userRepo, auditRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, service.NewAuditService(auditRepo, log), log)
	dispatcher.Start(context.WithoutCancel(ctx))

	authService := service.NewAuthService(
		userRepo, crypto.NewBcryptHasher(cfg.BcryptCost), cfg.JWTSecret, cfg.TokenTTL, dispatcher, log,
	)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin account")
		}
	}

	cache := redis.NewCatalogCache(rdb, cfg.Redis.CacheTTL)
	e := api.NewRouter(api.Dependencies{
		Productions: service.NewProductionService(productionRepo, roleRepo, actorRepo, cache, dispatcher, log),
		Actors:      service.NewActorService(actorRepo, roleRepo, productionRepo, dispatcher, log),
		Roles:       service.NewRoleService(roleRepo, productionRepo, actorRepo, dispatcher, log),
		Auth:        authService,
		Health:      []handler.DependencyCheck{handler.MongoCheck(db), handler.RedisCheck(rdb)},
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	dispatcher.Stop()
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	log.Info().Msg("shutdown complete")
}
