package usecase

import (
	"time"

	"github-relay-bot/internal/registry"
	"github-relay-bot/internal/webhook"
	pkgLog "github-relay-bot/pkg/log"
	"github-relay-bot/pkg/metrics"
)

// Options configures delivery de-duplication. A non-positive DedupSize disables it.
type Options struct {
	DedupSize int
	DedupTTL  time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	registry registry.Registry
	sender   webhook.Sender
	m        *metrics.Metrics
	seen     *deliveryCache
}

var _ webhook.UseCase = (*implUseCase)(nil)

// New creates a new webhook UseCase instance.
func New(
	l pkgLog.Logger,
	reg registry.Registry,
	sender webhook.Sender,
	m *metrics.Metrics,
	opt Options,
) *implUseCase {
	return &implUseCase{
		l:        l,
		registry: reg,
		sender:   sender,
		m:        m,
		seen:     newDeliveryCache(opt.DedupSize, opt.DedupTTL),
	}
}
