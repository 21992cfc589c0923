// Package sweeper runs the periodic expiry sweep for ephemeral tokens.
package sweeper

import (
	"context"
	"time"

	"go.pilab.hu/credstore/log"
	"go.pilab.hu/credstore/services"
)

// Sweeper drives EphemeralTokenService.Sweep on a fixed interval. The
// horizon for each sweep comes from an injectable clock.
type Sweeper struct {
	tokens   *services.EphemeralTokenService
	interval time.Duration
	logger   log.Logger
	now      func() time.Time
}

func New(tokens *services.EphemeralTokenService, interval time.Duration, logger log.Logger) *Sweeper {
	return &Sweeper{
		tokens:   tokens,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the sweeper clock for tests.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Run sweeps once immediately, then on every interval tick until the
// context is cancelled. Sweep failures are logged and retried on the next
// tick; a failed sweep only delays cleanup, it never loses data.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	horizon := s.now().UTC()
	deleted, err := s.tokens.Sweep(ctx, horizon)
	if err != nil {
		s.logger.Error(ctx, "ephemeral token sweep failed", err)
		return
	}
	if deleted > 0 {
		s.logger.Info(ctx, "ephemeral token sweep complete", map[string]interface{}{
			"deleted": deleted,
			"horizon": horizon,
		})
	}
}
