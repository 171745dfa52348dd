// @title        Rommelaere Renov content API
// @version      1.0
// @description  Content-management backend for the Rommelaere Renov marketing site.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rommelaere-renov/site-backend/internal/api"
	"github.com/rommelaere-renov/site-backend/internal/infrastructure/config"
	mongodb "github.com/rommelaere-renov/site-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/rommelaere-renov/site-backend/internal/infrastructure/db/redis"
	"github.com/rommelaere-renov/site-backend/internal/infrastructure/notify"
	"github.com/rommelaere-renov/site-backend/pkg/logger"

	_ "github.com/rommelaere-renov/site-backend/docs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	notifier := notify.New(notify.Config{
		WebhookURL: cfg.Notify.WebhookURL,
		WebhookKey: cfg.Notify.WebhookKey,
		SMTPHost:   cfg.Notify.SMTPHost,
		SMTPPort:   cfg.Notify.SMTPPort,
		SMTPUser:   cfg.Notify.SMTPUser,
		SMTPPass:   cfg.Notify.SMTPPass,
		EmailTo:    cfg.Notify.EmailTo,
		AppName:    cfg.Notify.AppName,
	}, log)
	notifier.Start(ctx)

	e := api.NewRouter(db, rdb, notifier, api.Options{
		SessionSecret: cfg.SessionSecret,
		CookieDomain:  cfg.CookieDomain,
		SecureCookies: cfg.IsProduction(),
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the indexes the repositories rely on, most
// importantly the unique email index guarding the admin bootstrap race.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProjectImageRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewTestimonialRepository(db).EnsureIndexes(ctx)
}
