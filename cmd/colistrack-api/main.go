package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rorado/colistrack/config"
	"github.com/rorado/colistrack/internal/api/httpapi"
	"github.com/rorado/colistrack/internal/broker/kafka"
	"github.com/rorado/colistrack/internal/cache"
	"github.com/rorado/colistrack/internal/cache/rediscache"
	"github.com/rorado/colistrack/internal/labelpdf"
	"github.com/rorado/colistrack/internal/services/labels"
	"github.com/rorado/colistrack/internal/services/shipments"
	"github.com/rorado/colistrack/internal/services/tracking"
	"github.com/rorado/colistrack/internal/storage/filestore"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("configPath"))
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	httpAddr := cfg.ColisTrack.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8080"
	}
	dataDir := cfg.ColisTrack.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	cacheTTL := time.Duration(cfg.ColisTrack.TrackingCacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	labelPerMin := int64(cfg.ColisTrack.LabelRateLimitPerMinute)
	if labelPerMin <= 0 {
		labelPerMin = 30
	}

	store := filestore.New(dataDir)
	if err := store.Init(); err != nil {
		panic(fmt.Sprintf("failed to seed data dir: %v", err))
	}
	slog.Info("data dir ready", "dir", dataDir)

	// Redis is optional; without it tracking lookups hit the files every
	// time and label rendering is unlimited.
	var bc cache.BytesCache
	var limiter httpapi.RateLimiter
	if cfg.Redis.Host != "" {
		redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		rc := rediscache.New(redisAddr)
		defer func() { _ = rc.Close() }()
		bc = rc
		limiter = rediscache.NewRateLimiter(redisAddr)
		slog.Info("redis cache enabled", "addr", redisAddr)
	}

	// Kafka is optional; without a broker sync notifications are skipped.
	var producer shipments.Producer
	topic := cfg.Kafka.TrackingSyncedTopicName
	if topic == "" {
		topic = "tracking.synced"
	}
	if cfg.Kafka.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
		producer = kafka.NewProducer(brokers)
		slog.Info("kafka producer enabled", "brokers", brokers, "topic", topic)
	}

	shipSvc := shipments.New(store, producer, topic)
	trackSvc := tracking.New(store, bc, cacheTTL)
	labelSvc := labels.New(shipSvc)

	handler := httpapi.New(httpapi.Config{
		Shipments:               shipSvc,
		Tracking:                trackSvc,
		Labels:                  labelSvc,
		Renderer:                labelpdf.New(""),
		Store:                   store,
		Limiter:                 limiter,
		LabelRateLimitPerMinute: labelPerMin,
		SwaggerPath:             cfg.ColisTrack.SwaggerPath,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runHTTPServer(ctx, serverOpts{httpAddr: httpAddr}, handler.Router()); err != nil && err != context.Canceled {
		panic(err)
	}
}
