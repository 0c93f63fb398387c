package test

import (
	pkgLog "github-relay-bot/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleRender(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}

// RegisterRoutes maps the test endpoints under /test.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/test")
	g.POST("/render", h.HandleRender)
	g.GET("/health", h.HandleHealthCheck)
}
