// Package retry wraps a single protocol call with a bounded, fixed-delay retry
// loop. Every attempt reports a tagged Result, so the policy never has to
// guess whether an error is worth another try.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 2 * time.Second
)

// ErrExhausted is returned once every allowed attempt ended with a transient failure.
var ErrExhausted = errors.New("retry budget exhausted")

// Outcome classifies a single attempt.
type Outcome int

const (
	OK Outcome = iota
	Retryable
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Retryable:
		return "retryable"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is what an attempt hands back to the policy.
type Result[T any] struct {
	Value   T
	Err     error
	Outcome Outcome
}

// Success wraps a successful value.
func Success[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OK}
}

// Transient marks err as worth another attempt.
func Transient[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("transient failure")
	}
	return Result[T]{Err: err, Outcome: Retryable}
}

// Permanent marks err as fatal; the policy returns it as is.
func Permanent[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("fatal failure")
	}
	return Result[T]{Err: err, Outcome: Fatal}
}

// Attempt performs one try. n starts at 1.
type Attempt[T any] func(ctx context.Context, n int) Result[T]

// Policy is a fixed-delay retry policy without jitter.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy returns 3 attempts spaced by 2 seconds.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultDelay,
	}
}

// Do runs attempt until it succeeds, fails fatally or the attempt budget is spent.
func Do[T any](ctx context.Context, p Policy, attempt Attempt[T]) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		return zero, fmt.Errorf("%w: policy allows no attempts", ErrExhausted)
	}

	var (
		n    int
		last Outcome
	)
	operation := func() (T, error) {
		n++
		res := attempt(ctx, n)
		last = res.Outcome

		switch res.Outcome {
		case OK:
			return res.Value, nil
		case Fatal:
			return zero, backoff.Permanent(res.Err)
		default:
			return zero, res.Err
		}
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Delay)),
		backoff.WithMaxTries(uint(p.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Warn("transient failure, retrying",
				"attempt", n,
				"max_attempts", p.MaxAttempts,
				"next", next,
				"error", err,
			)
		}),
	)
	if err == nil {
		return v, nil
	}

	if last == Fatal {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return zero, permanent.Unwrap()
		}
		return zero, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	return zero, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, n, err)
}
