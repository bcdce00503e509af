package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimit"
)

type appConfig struct {
	Server  httpserver.Config
	Log     logger.Config
	Email   email.Config
	Contact contact.Config

	// RedisURL enables the shared rate-limit store for multi-instance
	// deployments. When empty, counters live in process memory.
	RedisURL string `env:"REDIS_URL"`

	// DevMode replaces Postmark delivery with the disk-writing DevSender.
	DevMode     bool   `env:"DEV_MODE" envDefault:"false"`
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(slog.String("app", "contactform")))

	var (
		store     ratelimit.Store
		readiness []func(context.Context) error
	)
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid redis url", slog.Any("error", err))
			os.Exit(1)
		}
		client := redis.NewClient(opt)
		store, err = ratelimit.NewRedisStore(client)
		if err != nil {
			log.Error("failed to create redis rate-limit store", slog.Any("error", err))
			os.Exit(1)
		}
		readiness = append(readiness, func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	} else {
		memStore := ratelimit.NewMemoryStore()
		defer memStore.Close()
		store = memStore
	}

	limiter, err := ratelimit.NewFixedWindow(store, cfg.Contact.RateLimitRequests, cfg.Contact.RateLimitWindow)
	if err != nil {
		log.Error("failed to create rate limiter", slog.Any("error", err))
		os.Exit(1)
	}

	var sender email.Sender
	if cfg.DevMode {
		sender = email.NewDevSender(cfg.DevEmailDir)
		log.Info("dev mode enabled, emails are written to disk", slog.String("dir", cfg.DevEmailDir))
	} else {
		sender = email.MustNewPostmarkSender(cfg.Email)
	}

	svc := contact.NewService(sender, limiter, cfg.Contact.RecipientEmail, contact.WithLogger(log))

	router := chi.NewRouter()
	router.Handle("/contact", contact.NewHandler(svc, cfg.Contact, log))
	router.Get("/health", httpserver.HealthCheckHandler(ctx, log, readiness...))

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}
