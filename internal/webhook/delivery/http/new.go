package http

import (
	"github.com/gin-gonic/gin"

	"github-relay-bot/internal/webhook"
	"github-relay-bot/pkg/log"
)

// Handler is the public interface for the GitHub webhook delivery layer.
type Handler interface {
	HandleGitHubWebhook(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       webhook.UseCase
	security *webhook.SecurityValidator
}

// New creates a new HTTP handler for GitHub webhooks.
func New(l log.Logger, uc webhook.UseCase, securityConfig webhook.SecurityConfig) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		security: webhook.NewSecurityValidator(securityConfig),
	}
}
