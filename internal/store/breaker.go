package store

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"housepriced/pkg/types"
)

// Result labels for housepriced_store_writes_total.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultRejected = "rejected"
)

// GuardConfig tunes a Guarded recorder. Zero values select defaults.
type GuardConfig struct {
	WriteTimeout    time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration
	Logger          zerolog.Logger
}

// Guarded bounds every write with a timeout and stops calling the backend
// after repeated consecutive failures until the cooldown elapses.
// Failures are logged and counted; callers may ignore the returned error.
type Guarded struct {
	inner    Recorder
	cb       *gobreaker.CircuitBreaker[struct{}]
	timeout  time.Duration
	log      zerolog.Logger
	failures atomic.Uint64
}

// NewGuarded wraps inner.
func NewGuarded(inner Recorder, cfg GuardConfig) *Guarded {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = defaultBreakerFailures
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = defaultBreakerCooldown
	}
	backend := inner.Backend()
	g := &Guarded{
		inner:   inner,
		timeout: cfg.WriteTimeout,
		log:     cfg.Logger.With().Str("component", "store").Str("backend", backend).Logger(),
	}
	storeBreakerState.WithLabelValues(backend).Set(0)
	g.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "store-" + backend,
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.Info().Str("from", from.String()).Str("to", to.String()).Msg("store breaker state change")
			storeBreakerState.WithLabelValues(backend).Set(stateValue(to))
		},
	})
	return g
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Record writes rec through the breaker. The write is detached from ctx
// cancellation so a client hanging up does not drop the record, but it is
// still bounded by the write timeout.
func (g *Guarded) Record(ctx context.Context, rec types.PredictionRecord) error {
	_, err := g.cb.Execute(func() (struct{}, error) {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
		defer cancel()
		return struct{}{}, g.inner.Record(wctx, rec)
	})
	backend := g.inner.Backend()
	if err != nil {
		result := resultError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = resultRejected
		}
		storeWritesTotal.WithLabelValues(backend, result).Inc()
		g.failures.Add(1)
		g.log.Warn().Err(err).Str("result", result).Msg("store write failed")
		return err
	}
	storeWritesTotal.WithLabelValues(backend, resultOK).Inc()
	return nil
}

// Failures returns the number of writes that did not reach the backend.
func (g *Guarded) Failures() uint64 { return g.failures.Load() }

// BreakerState returns closed, half-open or open.
func (g *Guarded) BreakerState() string { return g.cb.State().String() }

// Unwrap returns the guarded backend.
func (g *Guarded) Unwrap() Recorder { return g.inner }

func (g *Guarded) Ping(ctx context.Context) error  { return g.inner.Ping(ctx) }
func (g *Guarded) Close(ctx context.Context) error { return g.inner.Close(ctx) }
func (g *Guarded) Backend() string                 { return g.inner.Backend() }
