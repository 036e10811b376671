package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/emitter"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/service/archive"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/backend"
)

type syncConfig struct {
	WatchList  string            `long:"watch-list" env:"SYSCLIENT_WATCH_LIST" description:"YAML file with the blockchains and addresses to archive" required:"true"`
	Backend    backend.Config    `group:"Backend Options"`
	Sync       archive.Config    `group:"Sync Options"`
	Clickhouse config.Clickhouse `group:"ClickHouse Options"`
	Kafka      config.Kafka      `group:"Kafka Options"`
	Metrics    config.Metrics    `group:"Metrics Options"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := syncConfig{}
	ok, err := config.Parse(&cfg, os.Args)
	if err != nil {
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if !ok {
		return
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("sysclient sync failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg syncConfig, logger *zap.Logger) error {
	watches, err := archive.LoadWatchList(cfg.WatchList)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.Metrics.Addr, logger)

	repo, err := clickhouse.NewRepository(cfg.Clickhouse.DSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	client, err := backend.New(cfg.Backend, nil, logger)
	if err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer client.CancelAll()

	var events archive.Emitter
	if cfg.Kafka.Enabled() {
		kafkaEmitter := emitter.NewKafkaEmitter(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			cfg.Kafka.BatchTimeout,
			metrics.NewEmitter(cfg.Kafka.Topic),
			logger,
		)
		defer func() {
			if err := kafkaEmitter.Close(); err != nil {
				logger.Warn("close kafka writer", zap.Error(err))
			}
		}()
		events = kafkaEmitter
	} else {
		logger.Info("no kafka brokers configured, events disabled")
	}

	svc := archive.NewService(
		client,
		repo,
		events,
		metrics.NewArchiveSync(),
		watches,
		cfg.Sync,
		logger.Named("archive"),
	)

	logger.Info("starting archive sync",
		zap.String("backend", cfg.Backend.Kind),
		zap.Int("blockchains", len(watches)),
		zap.Duration("interval", cfg.Sync.Interval),
	)
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
