package feed

import (
	"context"
	"time"
)

// Pacer runs steps strictly one after another and pauses a fixed delay after every step,
// whatever the step did. It knows nothing about what a step is.
type Pacer struct {
	Delay time.Duration
	Sleep func(ctx context.Context, d time.Duration) error // defaults to SleepContext
}

// NewPacer makes a pacer with the real sleep
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{Delay: delay, Sleep: SleepContext}
}

// Each calls step for i in [0,n) in order. It returns early only if ctx is canceled.
func (p *Pacer) Each(ctx context.Context, n int, step func(i int)) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		step(i)
		if err := sleep(ctx, p.Delay); err != nil {
			return err
		}
	}
	return nil
}

// SleepContext pauses for d or until ctx is done
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
