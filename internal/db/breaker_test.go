package db

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-ads/internal/config/configs"
	"control-ads/internal/metrics"
)

func testBreaker(t *testing.T) (*Breaker, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	cfg := configs.Breaker{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
	return NewBreaker("store", cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), m), m
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	b, m := testBreaker(t)
	boom := errors.New("connection refused")

	for i := 0; i < 3; i++ {
		_, err := Execute(b, func() (int, error) { return 0, boom })
		require.ErrorIs(t, err, boom)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("store")))

	called := false
	_, err := Execute(b, func() (int, error) { called = true; return 1, nil })
	assert.False(t, called)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBreakerIgnoresCanceledCalls(t *testing.T) {
	b, _ := testBreaker(t)
	for i := 0; i < 5; i++ {
		_, _ = Execute(b, func() (string, error) { return "", context.Canceled })
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestExecutePassesResults(t *testing.T) {
	b, _ := testBreaker(t)

	got, err := Execute(b, func() ([]string, error) { return []string{"a"}, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	var nilPtr *int
	p, err := Execute(b, func() (*int, error) { return nilPtr, nil })
	require.NoError(t, err)
	assert.Nil(t, p)

	v, err := Execute[int](nil, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
