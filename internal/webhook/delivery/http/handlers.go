package http

import (
	"github.com/gin-gonic/gin"

	"github-relay-bot/pkg/response"
)

// HandleGitHubWebhook godoc
// @Summary     Receive a GitHub webhook
// @Description Relays a push or ping event to the chat bound to the path token.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       token               path   string true  "Chat token"
// @Param       X-GitHub-Event      header string true  "Event kind (push, ping)"
// @Param       X-GitHub-Delivery   header string false "Delivery id"
// @Param       X-Hub-Signature-256 header string false "HMAC signature, required when a secret is configured"
// @Success     200 {object} response.AckResp
// @Failure     400 {object} response.Resp "Body is not a JSON object"
// @Failure     401 {object} response.Resp "Invalid signature"
// @Failure     404 {object} response.Resp "Unknown token or unsupported event"
// @Failure     409 {object} response.Resp "Same delivery still being processed"
// @Failure     500 {object} response.Resp "Delivery failed"
// @Router      /hooks/{token} [POST]
func (h *handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDispatchReq(c)
	if err != nil {
		h.l.Warnf(ctx, "webhook.delivery.http.HandleGitHubWebhook: %v", err)
		h.mapError(c, err)
		return
	}

	outcome, err := h.uc.Dispatch(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "webhook.delivery.http.HandleGitHubWebhook: uc.Dispatch kind=%q: %v", input.EventKind, err)
		h.mapError(c, err)
		return
	}

	h.l.Debugf(ctx, "webhook.delivery.http.HandleGitHubWebhook: kind=%s outcome=%s", input.EventKind, outcome)
	response.Ack(c)
}
