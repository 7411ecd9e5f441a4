package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pricing-bot/internal/bot"
	"pricing-bot/internal/catalog"
	"pricing-bot/internal/config"
	"pricing-bot/internal/session"
	redisstore "pricing-bot/internal/storage/redis"
	"pricing-bot/internal/theme"
	"pricing-bot/pkg/logger"
	"pricing-bot/pkg/redis"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	src, closeSource, err := catalog.Open(ctx, cfg.Catalog, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open catalog source", zap.Error(err))
	}
	defer closeSource()

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		zapLogger.Fatal("Failed to load pricing catalog", zap.Error(err))
	}
	zapLogger.Info("Pricing catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("casino_rows", len(cat.Casino)),
		zap.Int("sportsbook_rows", len(cat.Sportsbook)))

	var sessions session.Store = session.NewMemoryStore()
	if cfg.SessionBackend == config.SessionBackendRedis {
		redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisClient.Close()

		if err := redisClient.WaitReady(ctx, zapLogger); err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		sessions = redisstore.New(redisClient, cfg.RedisTTL)
	}

	defaultTheme, err := theme.Parse(cfg.DefaultTheme)
	if err != nil {
		zapLogger.Warn("Invalid DEFAULT_THEME, using light", zap.Error(err))
		defaultTheme = theme.Light
	}
	prefs := theme.NewPreference(defaultTheme)

	tgBot, err := bot.New(
		cfg.TelegramToken,
		cfg,
		cat,
		sessions,
		prefs,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}
