package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-relay-bot/internal/webhook"
	"github-relay-bot/pkg/response"
)

const notFoundMessage = "not found"

// mapError writes the HTTP answer for a dispatch error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, webhook.ErrMalformedPayload):
		response.Error(c, webhook.ErrMalformedPayload, nil)
	case errors.Is(err, webhook.ErrUnsupportedEventKind), errors.Is(err, webhook.ErrUnknownToken):
		// Unknown tokens and unsupported kinds share one body.
		response.NotFound(c, notFoundMessage)
	case errors.Is(err, webhook.ErrDeliveryInFlight):
		response.Conflict(c, webhook.ErrDeliveryInFlight.Error())
	case errors.Is(err, webhook.ErrInvalidSignature):
		response.Unauthorized(c)
	default:
		response.InternalError(c, err)
	}
}
