package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github-relay-bot/internal/webhook"
)

// maxPayloadBytes is the largest payload GitHub sends.
const maxPayloadBytes = 25 << 20

// processDispatchReq reads the body and headers and verifies the signature.
func (h *handler) processDispatchReq(c *gin.Context) (webhook.DispatchInput, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		return webhook.DispatchInput{}, fmt.Errorf("%w: read body: %v", webhook.ErrMalformedPayload, err)
	}

	if err := h.security.ValidateGitHubSignature(body, c.GetHeader(webhook.HeaderSignature)); err != nil {
		return webhook.DispatchInput{}, err
	}

	return webhook.DispatchInput{
		Token:      c.Param("token"),
		EventKind:  c.GetHeader(webhook.HeaderEvent),
		DeliveryID: c.GetHeader(webhook.HeaderDelivery),
		Body:       body,
	}, nil
}
