package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github-relay-bot/config"
	_ "github-relay-bot/docs" // Swagger docs
	"github-relay-bot/internal/httpserver"
	tgDelivery "github-relay-bot/internal/registry/delivery/telegram"
	"github-relay-bot/internal/registry/repository/yamlfile"
	regUC "github-relay-bot/internal/registry/usecase"
	"github-relay-bot/internal/test"
	"github-relay-bot/internal/webhook"
	webhookHTTP "github-relay-bot/internal/webhook/delivery/http"
	webhookUC "github-relay-bot/internal/webhook/usecase"
	"github-relay-bot/pkg/log"
	"github-relay-bot/pkg/metrics"
	"github-relay-bot/pkg/telegram"
)

// @title       GitHub Relay Bot API
// @description Relays GitHub push and ping webhooks to registered Telegram chats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub relay bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promRegistry)

	// 4. Chat registry
	if err := os.MkdirAll(filepath.Dir(cfg.Registry.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	store := yamlfile.New(cfg.Registry.Path, logger)
	reg, err := regUC.New(ctx, store, logger, m, regUC.Options{
		BaseURL:  cfg.Registry.BaseURL,
		BotToken: cfg.Telegram.BotToken,
	})
	if err != nil {
		return fmt.Errorf("failed to load registry from %s: %w", cfg.Registry.Path, err)
	}
	if reg.BotToken() == "" {
		return fmt.Errorf("no Telegram bot token: set telegram.bot_token or the token field of %s", cfg.Registry.Path)
	}
	logger.Infof(ctx, "Registry loaded from %s", cfg.Registry.Path)
	if reg.WebhookURL("") == "" {
		logger.Warn(ctx, "No webhook base URL: set registry.base_url or the baseurl field of the state file")
	}

	// 5. Telegram Bot client
	bot := telegram.NewBot(reg.BotToken())
	if cfg.Telegram.APIURL != "" {
		bot.SetAPIURL(fmt.Sprintf("%s/bot%s", cfg.Telegram.APIURL, reg.BotToken()))
	}
	bot.SetRequestTimeout(cfg.Telegram.RequestTimeout)

	botUsername := ""
	if me, meErr := bot.GetMe(ctx); meErr != nil {
		logger.Warnf(ctx, "Could not fetch bot identity: %v", meErr)
	} else {
		botUsername = me.Username
		logger.Infof(ctx, "Authorized as @%s", botUsername)
	}

	// 6. Delivery handlers
	cfg.Telegram.WebhookSecret = ensureWebhookSecret(ctx, logger, cfg.Telegram.WebhookSecret)
	telegramHandler := tgDelivery.New(logger, reg, bot, m, tgDelivery.Options{
		WebhookSecret: cfg.Telegram.WebhookSecret,
		BotUsername:   botUsername,
	})

	dispatcher := webhookUC.New(logger, reg, bot, m, webhookUC.Options{
		DedupSize: cfg.Webhook.DedupSize,
		DedupTTL:  cfg.Webhook.DedupTTL,
	})
	gitWebhookHandler := webhookHTTP.New(logger, dispatcher, webhook.SecurityConfig{
		Secret: cfg.Webhook.Secret,
	})
	if cfg.Webhook.Secret == "" {
		logger.Warn(ctx, "webhook.secret not set, GitHub signatures are not verified")
	}

	// 7. Telegram update mode
	webhookMode := setupTelegramMode(ctx, logger, bot, cfg.Telegram)

	srvCfg := httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Gatherer:          promRegistry,
		Bindings:          reg,
		GitWebhookHandler: gitWebhookHandler,
	}
	if cfg.HTTPServer.TestRoutes {
		srvCfg.TestHandler = test.New(logger)
	}
	if webhookMode {
		srvCfg.TelegramHandler = telegramHandler
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 9. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if !webhookMode {
		poller := telegram.NewPoller(bot, telegramHandler.HandleUpdate, cfg.Telegram.PollTimeout, logger)
		g.Go(func() error {
			return poller.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
