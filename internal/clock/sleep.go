// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"errors"
	"time"
)

// ErrPollExhausted is returned by Poller.Run when every attempt reported "not yet".
var ErrPollExhausted = errors.New("poll attempts exhausted")

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poller retries a check on a fixed schedule: one initial delay, then up to Attempts checks
// separated by Period.
type Poller struct {
	InitialDelay time.Duration
	Period       time.Duration
	Attempts     int
	// Sleep defaults to SleepWithContext.
	Sleep func(context.Context, time.Duration) error
}

// NewPoller builds a Poller whose attempts fill the total budget: budget/period - 1 retries after the first check.
func NewPoller(initialDelay, period, budget time.Duration) Poller {
	attempts := 1
	if period > 0 {
		attempts = int(budget / period)
	}
	if attempts < 1 {
		attempts = 1
	}
	return Poller{InitialDelay: initialDelay, Period: period, Attempts: attempts}
}

// Run calls check until it reports done, the attempts run out or ctx ends.
func (p Poller) Run(ctx context.Context, check func(context.Context) bool) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = SleepWithContext
	}

	if err := sleep(ctx, p.InitialDelay); err != nil {
		return err
	}
	for attempt := 0; attempt < p.Attempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, p.Period); err != nil {
				return err
			}
		}
		if check(ctx) {
			return nil
		}
	}
	return ErrPollExhausted
}
