// Package breaker isolates outbound calls behind a timeout and a circuit breaker.
// Every failure it returns is a *domain.UpstreamServiceError.
package breaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/metrics"
)

// Settings tunes a breaker.
type Settings struct {
	MaxRequests      uint32
	Interval         time.Duration
	OpenTimeout      time.Duration
	FailureThreshold uint32
	// CallTimeout bounds each call. Zero means no extra deadline.
	CallTimeout time.Duration
}

// Breaker runs calls returning T for one upstream service.
type Breaker[T any] struct {
	name    string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[T]
}

// New creates a closed breaker named after the upstream service.
func New[T any](name string, s Settings, logger *slog.Logger) *Breaker[T] {
	log := logger.With("breaker", name)
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	metrics.BreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller walking away is not the upstream's fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.BreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Breaker[T]{name: name, timeout: s.CallTimeout, cb: cb}
}

// Name returns the upstream service name.
func (b *Breaker[T]) Name() string { return b.name }

// State returns the current breaker state.
func (b *Breaker[T]) State() gobreaker.State { return b.cb.State() }

// Do runs fn under the call timeout inside the breaker.
func (b *Breaker[T]) Do(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	result, err := b.cb.Execute(func() (T, error) {
		callCtx := ctx
		if b.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, b.timeout)
			defer cancel()
		}
		return fn(callCtx)
	})

	metrics.UpstreamDuration.WithLabelValues(b.name).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(b.name, outcome).Inc()

		var zero T
		return zero, domain.NewUpstreamError(b.name, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
