package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 5*time.Millisecond)
	want := []time.Duration{1, 2, 4, 5, 5}
	for _, w := range want {
		require.Equal(t, w*time.Millisecond, b.Next())
		b.count++
	}
	b.Reset()
	require.Equal(t, time.Millisecond, b.Next())
}

func TestLinear(t *testing.T) {
	b := NewLinear(time.Millisecond, 0)
	for i := 1; i <= 4; i++ {
		require.Equal(t, time.Duration(i)*time.Millisecond, b.Next())
		b.count++
	}
}

func TestRetry(t *testing.T) {
	b := NewExponential(time.Millisecond, 2*time.Millisecond)
	calls := 0
	err := b.Retry(context.Background(), func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)

	boom := errors.New("boom")
	err = NewLinear(time.Millisecond, 0).Retry(context.Background(), func() (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := NewLinear(5*time.Millisecond, 0).Retry(ctx, func() (bool, error) {
		return false, nil
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
