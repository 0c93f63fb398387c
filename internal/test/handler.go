package test

import (
	"errors"
	"net/http"

	"github-relay-bot/internal/event"
	pkgLog "github-relay-bot/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l pkgLog.Logger
}

// HandleRender normalizes and renders a payload without delivering it
// @Summary Dry-run message rendering
// @Description Render a GitHub payload exactly as the relay would send it, without calling Telegram
// @Tags test
// @Accept json
// @Produce json
// @Param request body RenderRequest true "Event kind and payload"
// @Success 200 {object} RenderResponse
// @Failure 400 {object} RenderResponse
// @Failure 404 {object} RenderResponse
// @Router /test/render [post]
func (h *handler) HandleRender(c *gin.Context) {
	ctx := c.Request.Context()

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, RenderResponse{Error: "Invalid request", Details: err.Error()})
		return
	}

	ev, err := event.Normalize(event.Kind(req.EventKind), req.Payload)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, event.ErrUnsupportedEventKind) {
			status = http.StatusNotFound
		}
		c.JSON(status, RenderResponse{Error: "Normalization failed", Details: err.Error()})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleRender: kind=%s", req.EventKind)
	c.JSON(http.StatusOK, RenderResponse{
		Success: true,
		Text:    event.Render(ev),
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
