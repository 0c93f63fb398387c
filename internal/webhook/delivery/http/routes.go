package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the GitHub webhook endpoint.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/hooks/:token", h.HandleGitHubWebhook)
}
