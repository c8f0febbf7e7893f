package backoff

import (
	"context"
	"time"
)

// Strategy returns the wait before the attempt following attempt n (0 based).
type Strategy interface {
	Duration(n int, start time.Duration) time.Duration
}

type Backoff struct {
	start    time.Duration
	limit    time.Duration
	count    int
	strategy Strategy
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

func NewLinear(start, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Next returns the upcoming wait, capped by the limit.
func (b *Backoff) Next() time.Duration {
	d := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

// Wait sleeps for the upcoming wait or until ctx is done.
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.count++
		return nil
	}
}

// Retry calls fn until it reports done, returns an error, or ctx is done.
func (b *Backoff) Retry(ctx context.Context, fn func() (bool, error)) error {
	for {
		done, err := fn()
		if err != nil || done {
			return err
		}
		if err := b.Wait(ctx); err != nil {
			return err
		}
	}
}

type exponential struct{}

func (exponential) Duration(n int, start time.Duration) time.Duration {
	if n > 30 {
		n = 30
	}
	return start << uint(n)
}

type linear struct{}

func (linear) Duration(n int, start time.Duration) time.Duration {
	return time.Duration(n+1) * start
}
