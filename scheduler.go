package sacred

import (
	"context"
	"sync"
	"time"
)

// Scheduler drives the animation loop for surfaces that have no frame
// callback of their own (the software backend; the ebiten backend
// hosts its own loop). Exactly one draw pass executes per tick; frames
// never overlap.
type Scheduler struct {
	step     func(dt float64) error
	interval time.Duration

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewScheduler creates a scheduler invoking step at the given rate.
// A non-positive fps defaults to 60.
func NewScheduler(fps float64, step func(dt float64) error) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	return &Scheduler{
		step:     step,
		interval: time.Duration(float64(time.Second) / fps),
		stopped:  make(chan struct{}),
	}
}

// Run blocks, invoking the step callback once per tick until the
// context is canceled or Stop is called. A step error is logged and
// the loop keeps running on the next tick; only cancellation ends the
// loop.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopped:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := s.step(dt); err != nil {
				Logger().Warn("frame error", "err", err)
			}
		}
	}
}

// Stop ends the loop. Idempotent; safe to call from any goroutine.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopped) })
}
