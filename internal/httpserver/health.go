package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github-relay-bot/pkg/response"
)

const (
	ServiceName    = "github-relay-bot"
	ServiceVersion = "1.0.0"
)

// BindingCounter reports how many chats the loaded registry holds.
type BindingCounter interface {
	Count(ctx context.Context) int
}

// healthBody is the common payload of the health endpoints.
type healthBody struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Version      string `json:"version"`
	TelegramMode string `json:"telegram_mode,omitempty"`
	Bindings     *int   `json:"bindings,omitempty"`
}

func (srv HTTPServer) telegramMode() string {
	if srv.telegramHandler != nil {
		return "webhook"
	}
	return "polling"
}

// healthCheck reports the service identity and how Telegram updates arrive.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody{
		Status:       "healthy",
		Service:      ServiceName,
		Version:      ServiceVersion,
		TelegramMode: srv.telegramMode(),
	})
}

// readyCheck answers 200 once the registry state is loaded, with its binding count.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.bindings == nil {
		response.ServiceUnavailable(c, "registry not loaded")
		return
	}

	n := srv.bindings.Count(c.Request.Context())
	response.OK(c, healthBody{
		Status:       "ready",
		Service:      ServiceName,
		Version:      ServiceVersion,
		TelegramMode: srv.telegramMode(),
		Bindings:     &n,
	})
}

// liveCheck answers as long as the process serves HTTP.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody{Status: "alive", Service: ServiceName, Version: ServiceVersion})
}
