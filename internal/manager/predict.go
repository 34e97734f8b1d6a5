package manager

import (
	"context"
	"fmt"
	"time"

	"housepriced/pkg/types"
)

// Predict evaluates the three models on f. Linear regression sees the raw
// features; SVR and logistic regression see the output of their own scaler.
// The outcome is recorded (write failures are counted and otherwise
// ignored) and published as a prediction event.
func (m *Manager) Predict(ctx context.Context, f types.HouseFeatures, src types.Source) (Prediction, error) {
	m.mu.RLock()
	ms, st := m.models, m.state
	m.mu.RUnlock()
	if ms == nil || st != StateReady {
		return Prediction{}, ErrDependencyUnavailable("models not loaded")
	}
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}
	if !finite(f.Size) {
		return Prediction{}, ErrInvalidInput("size must be a finite number")
	}

	start := time.Now()
	p, err := evaluate(ms, f, src)
	if err != nil {
		return Prediction{}, err
	}
	predictionDuration.Observe(time.Since(start).Seconds())
	predictionsTotal.WithLabelValues(string(src), p.Category).Inc()
	m.predictions.Add(1)

	if err := m.recorder.Record(ctx, p.Record(m.now())); err != nil {
		m.storeFailures.Add(1)
	}
	m.publisher.Publish(Event{
		Name:    EventPrediction,
		ModelID: p.Best.Name,
		Fields: map[string]any{
			"source":   string(src),
			"linear":   p.Linear,
			"svr":      p.SVR,
			"category": p.Category,
		},
	})
	return p, nil
}

func evaluate(ms *ModelSet, f types.HouseFeatures, src types.Source) (Prediction, error) {
	x := f.Vector()

	linear, err := ms.Linear.Predict(x)
	if err != nil {
		return Prediction{}, fmt.Errorf("linear regression: %w", err)
	}

	xs, err := ms.SVRScaler.Transform(x)
	if err != nil {
		return Prediction{}, fmt.Errorf("svr scaler: %w", err)
	}
	svr, err := ms.SVR.Predict(xs)
	if err != nil {
		return Prediction{}, fmt.Errorf("svr: %w", err)
	}

	xl, err := ms.LogisticScaler.Transform(x)
	if err != nil {
		return Prediction{}, fmt.Errorf("logistic scaler: %w", err)
	}
	class, err := ms.Logistic.PredictClass(xl)
	if err != nil {
		return Prediction{}, fmt.Errorf("logistic regression: %w", err)
	}

	if !finite(linear) || !finite(svr) {
		return Prediction{}, ErrInvalidInput("non-finite prediction")
	}
	return Prediction{
		Features: f,
		Source:   src,
		Linear:   round2(linear),
		SVR:      round2(svr),
		Class:    class,
		Category: categoryFor(class, src),
		Best:     BestModel(),
	}, nil
}
