package hop

import (
	"context"
	"fmt"
	"time"
)

// Clock abstracts time for the polling loop so tests can run
// deterministically without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// realClock is the wall clock used outside of tests.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AwaitOptions bound a polling loop.
type AwaitOptions struct {
	// Timeout is the total budget. Once it elapses the loop fails with a
	// TimeoutError carrying the last observed value.
	Timeout time.Duration
	// Interval is the pause between reads.
	Interval time.Duration
	// Clock overrides the wall clock; nil means real time.
	Clock Clock
}

// Await invokes read until predicate holds for its result or the timeout
// elapses. The first read happens immediately. This is a synchronous,
// blocking wait: the management API's view of connections, channels,
// consumers, and statistics lags real broker state, and callers opt into
// hiding that lag here rather than in the read operations themselves.
// Mutations are never retried, only the read.
func Await[T any](ctx context.Context, read func(context.Context) (T, error), predicate func(T) bool, opts AwaitOptions) (T, error) {
	var zero T

	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}

	deadline := clock.Now().Add(opts.Timeout)

	last, err := read(ctx)
	if err != nil {
		return zero, fmt.Errorf("polling read: %w", err)
	}

	if predicate(last) {
		return last, nil
	}

	for {
		if !clock.Now().Add(opts.Interval).Before(deadline) {
			return last, &TimeoutError{LastValue: last, Elapsed: opts.Timeout.String()}
		}

		err = clock.Sleep(ctx, opts.Interval)
		if err != nil {
			return last, fmt.Errorf("polling interrupted: %w", err)
		}

		last, err = read(ctx)
		if err != nil {
			return zero, fmt.Errorf("polling read: %w", err)
		}

		if predicate(last) {
			return last, nil
		}
	}
}

// ListNonEmpty is the default predicate for "the listing became non-empty".
func ListNonEmpty[T any](items []T) bool {
	return len(items) > 0
}
