package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/cache"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/logger"
	"github.com/Domenick1991/roombooking/internal/notify"
	"github.com/Domenick1991/roombooking/internal/pricing"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/service/quote"
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

	registry, err := pricing.NewRegistryFromConfig(cfg.Pricing, zl.Named("pricing"))
	if err != nil {
		zl.Fatal("build price adjusters", zap.Error(err))
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, zl.Named("kafka"))
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.UnitCacheTTLSeconds)*time.Second)
	defer redisCache.Close()

	quoteService := quote.NewQuoteService(
		repository.NewQuoteRepository(pool),
		repository.NewUnitRepository(pool),
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ConsumerTopic(), zl.Named("consumer"))
	defer consumer.Close()

	sender := notify.NewSender(zl.Named("notify"))

	go func() {
		if err := consumer.ConsumeQuoteEvents(ctx, sender.Send); err != nil {
			zl.Error("consumer stopped", zap.Error(err))
		}
	}()

	expireTicker := time.NewTicker(time.Duration(cfg.Worker.ExpirationSweepMinutes) * time.Minute)
	defer expireTicker.Stop()

	for {
		select {
		case <-expireTicker.C:
			expired, err := quoteService.ExpireQuotes(ctx)
			if err != nil {
				zl.Error("expire quotes", zap.Error(err))
				continue
			}
			if len(expired) > 0 {
				zl.Info("expired quotes", zap.Int("count", len(expired)))
			}
		case <-ctx.Done():
			zl.Info("shutting down worker")
			return
		}
	}
}
