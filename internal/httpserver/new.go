package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github-relay-bot/internal/middleware"
	tgDelivery "github-relay-bot/internal/registry/delivery/telegram"
	"github-relay-bot/internal/test"
	webhookHTTP "github-relay-bot/internal/webhook/delivery/http"
	"github-relay-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	gatherer    prometheus.Gatherer
	bindings    BindingCounter

	// GitHub webhooks
	gitWebhookHandler webhookHTTP.Handler

	// Telegram updates, nil in long-polling mode
	telegramHandler tgDelivery.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Gatherer backs GET /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Bindings backs GET /ready. Without it the server reports not ready.
	Bindings BindingCounter

	// GitHub webhooks
	GitWebhookHandler webhookHTTP.Handler

	// Telegram updates, nil in long-polling mode
	TelegramHandler tgDelivery.Handler

	// Test domain, never mounted in production
	TestHandler test.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                middleware.New(logger),
		gatherer:          gatherer,
		bindings:          cfg.Bindings,
		gitWebhookHandler: cfg.GitWebhookHandler,
		telegramHandler:   cfg.TelegramHandler,
		testHandler:       cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gitWebhookHandler == nil {
		return errors.New("github webhook handler is required")
	}
	return nil
}
