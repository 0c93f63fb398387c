package telegram

import (
	"context"
	"errors"
	"time"

	pkgLog "github-relay-bot/pkg/log"
)

// UpdateHandler processes one update. It is called sequentially in update order.
type UpdateHandler func(ctx context.Context, update Update)

// Poller receives updates through getUpdates when no webhook is configured.
type Poller struct {
	bot     *Bot
	handler UpdateHandler
	timeout time.Duration
	backoff time.Duration
	l       pkgLog.Logger
}

// NewPoller creates a long poller. A non-positive timeout uses the default.
func NewPoller(bot *Bot, handler UpdateHandler, timeout time.Duration, l pkgLog.Logger) *Poller {
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}
	return &Poller{
		bot:     bot,
		handler: handler,
		timeout: timeout,
		backoff: pollErrorBackoff,
		l:       l,
	}
}

// SetErrorBackoff sets the pause after a failed getUpdates call.
func (p *Poller) SetErrorBackoff(d time.Duration) {
	if d >= 0 {
		p.backoff = d
	}
}

// Run polls until ctx is cancelled. An update is acknowledged by advancing
// the offset past it once its handler returns.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64
	p.l.Infof(ctx, "telegram.Poller.Run: long polling started (timeout=%s)", p.timeout)

	for {
		if ctx.Err() != nil {
			p.l.Info(ctx, "telegram.Poller.Run: stopped")
			return nil
		}

		updates, err := p.bot.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				p.l.Info(ctx, "telegram.Poller.Run: stopped")
				return nil
			}
			p.l.Warnf(ctx, "telegram.Poller.Run: getUpdates failed: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(p.backoff):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			p.handler(ctx, u)
		}
	}
}
