package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/roombooking/api"
	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/bootstrap"
	"github.com/Domenick1991/roombooking/internal/cache"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/logger"
	"github.com/Domenick1991/roombooking/internal/pricing"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/service/constraints"
	"github.com/Domenick1991/roombooking/internal/service/quote"
	"github.com/Domenick1991/roombooking/internal/service/units"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		zl.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		applied, err := repository.Migrate(ctx, pool)
		if err != nil {
			zl.Fatal("apply migrations", zap.Error(err))
		}
		zl.Info("migrations applied", zap.Int("count", applied))
	}

	registry, err := pricing.NewRegistryFromConfig(cfg.Pricing, zl.Named("pricing"))
	if err != nil {
		zl.Fatal("build price adjusters", zap.Error(err))
	}
	zl.Info("price adjusters registered",
		zap.Strings("adjusters", registry.Names()),
		zap.String("policy", string(registry.Policy())),
	)

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.UnitCacheTTLSeconds)*time.Second)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		zl.Warn("redis unavailable, unit cache and quote locks will fail", zap.Error(err))
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, zl.Named("kafka"))
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		zl.Warn("kafka unavailable, quote events will be dropped", zap.Error(err))
	}

	unitRepo := repository.NewUnitRepository(pool)
	quoteRepo := repository.NewQuoteRepository(pool)
	constraintRepo := repository.NewConstraintRepository(pool)

	unitService := units.NewUnitService(unitRepo, redisCache)
	constraintService := constraints.NewConstraintsService(constraintRepo)
	quoteService := quote.NewQuoteService(
		quoteRepo,
		unitRepo,
		redisCache,
		producer,
		registry,
		cfg.Kafka.QuotesTopic,
		time.Duration(cfg.Booking.QuoteTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.LockTTLSeconds)*time.Second,
		quote.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		quote.WithDefaultCurrency(cfg.Booking.DefaultCurrency),
		quote.WithMaxNights(cfg.Booking.MaxNights),
		quote.WithPublishRetries(cfg.Kafka.PublishRetries),
		quote.WithLogger(zl.Named("quote")),
	)

	router := api.NewRouter(zl, quoteService, unitService, constraintService)

	if err := bootstrap.Run(ctx, cfg, router, zl); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
