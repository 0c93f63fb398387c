package usecase

import (
	"context"
	"fmt"

	"github-relay-bot/internal/event"
	"github-relay-bot/internal/webhook"
)

// Dispatch validates, resolves, renders and delivers one webhook.
// The payload shape is checked before the kind and the kind before the token.
func (uc *implUseCase) Dispatch(ctx context.Context, input webhook.DispatchInput) (webhook.Outcome, error) {
	kind := event.Kind(input.EventKind)

	obj, err := event.Decode(input.Body)
	if err != nil {
		uc.observe(kind, "malformed")
		return "", fmt.Errorf("%w: %v", webhook.ErrMalformedPayload, err)
	}

	if !kind.Supported() {
		uc.observe(kind, "unsupported")
		return "", fmt.Errorf("%w: %q", webhook.ErrUnsupportedEventKind, input.EventKind)
	}

	binding, ok := uc.registry.FindByToken(ctx, input.Token)
	if !ok {
		uc.observe(kind, "unknown_token")
		return "", webhook.ErrUnknownToken
	}

	switch uc.seen.claim(input.DeliveryID) {
	case claimDone:
		uc.l.Infof(ctx, "webhook.usecase.Dispatch: delivery %s already handled", input.DeliveryID)
		uc.observe(kind, "duplicate")
		return webhook.OutcomeDuplicate, nil
	case claimInFlight:
		uc.l.Infof(ctx, "webhook.usecase.Dispatch: delivery %s still in flight", input.DeliveryID)
		uc.observe(kind, "in_flight")
		return "", fmt.Errorf("%w: %s", webhook.ErrDeliveryInFlight, input.DeliveryID)
	}

	ev, err := event.NormalizeObject(kind, obj)
	if err != nil {
		uc.seen.release(input.DeliveryID)
		uc.observe(kind, "malformed")
		return "", fmt.Errorf("%w: %v", webhook.ErrMalformedPayload, err)
	}

	text := event.Render(ev)
	if err := uc.sender.SendText(ctx, binding.ChatID, text, true); err != nil {
		uc.seen.release(input.DeliveryID)
		uc.l.Errorf(ctx, "webhook.usecase.Dispatch: send %s to chat %d: %v", kind, binding.ChatID, err)
		uc.m.Deliveries.WithLabelValues("failed").Inc()
		uc.observe(kind, "delivery_failed")
		return "", fmt.Errorf("%w: %v", webhook.ErrDeliveryFailed, err)
	}

	uc.seen.complete(input.DeliveryID)
	uc.m.Deliveries.WithLabelValues("ok").Inc()
	uc.observe(kind, "accepted")
	uc.l.Infof(ctx, "webhook.usecase.Dispatch: %s event delivered to chat %d", kind, binding.ChatID)
	return webhook.OutcomeAccepted, nil
}

// observe records the outcome. Unsupported kinds share one label value.
func (uc *implUseCase) observe(kind event.Kind, outcome string) {
	label := string(kind)
	if !kind.Supported() {
		label = "other"
	}
	uc.m.WebhookOutcomes.WithLabelValues(label, outcome).Inc()
}
