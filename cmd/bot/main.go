package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"HomeworkSentinel/internal/config"
	"HomeworkSentinel/internal/logging"
	"HomeworkSentinel/internal/notifier"
	"HomeworkSentinel/internal/poller"
	"HomeworkSentinel/internal/practicum"
	"HomeworkSentinel/internal/recorder"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("homework sentinel starting")

	// Missing tokens are the only fatal, non-retried condition.
	if err := cfg.Validate(); err != nil {
		logger.Fatal("configuration incomplete", zap.Error(err))
	}

	client := practicum.NewClient(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Proxy, cfg.Timeout())
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger.Named("notifier"))

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger.Named("recorder"))
		if err != nil {
			logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := poller.New(client, tn, rec, cfg.PollInterval(), logger.Named("poller"))
	if err := p.RegisterDigest(cfg.Schedule.DigestCron); err != nil {
		logger.Fatal("register digest task", zap.Error(err))
	}
	p.StartDigest()
	defer p.StopDigest()

	go tn.StartPolling(ctx, p.HandleCommand)
	go p.Run(ctx)

	logger.Info("homework sentinel is running", zap.Duration("interval", cfg.PollInterval()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping")
	cancel()
}
