package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gobreaker "github.com/sony/gobreaker/v2"

	"control-ads/internal/config/configs"
	"control-ads/internal/metrics"
)

// ErrUnavailable is returned while the breaker rejects calls to the store.
var ErrUnavailable = errors.New("data store unavailable")

// Breaker guards data store calls with a circuit breaker so that a failing
// store is not hammered by every request. A nil *Breaker runs calls
// unguarded.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

// NewBreaker builds a breaker named name. State transitions are logged and,
// when m is not nil, exported as a gauge.
func NewBreaker(name string, cfg configs.Breaker, logger *slog.Logger, m *metrics.Metrics) *Breaker {
	if m != nil {
		m.BreakerState.WithLabelValues(name).Set(0)
	}
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			if m != nil {
				m.BreakerState.WithLabelValues(name).Set(float64(to))
			}
		},
		// Callers giving up must not count against the store.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return &Breaker{cb: cb}
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Execute runs fn through the breaker. Rejections are reported as
// ErrUnavailable wrapping the breaker error.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}
	res, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return zero, err
	}
	typed, ok := res.(T)
	if !ok && res != nil {
		var zero T
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", res)
	}
	return typed, nil
}
