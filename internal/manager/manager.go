package manager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"housepriced/internal/store"
	"housepriced/pkg/types"
)

type Manager struct {
	mu     sync.RWMutex
	state  State
	err    string
	models *ModelSet

	recorder  store.Recorder
	publisher EventPublisher
	log       zerolog.Logger
	now       func() time.Time
	startTime time.Time

	predictions   atomic.Uint64
	storeFailures atomic.Uint64
}

// New returns a ready manager over models that discards records.
func New(models *ModelSet) *Manager {
	return NewWithConfig(ManagerConfig{Models: models})
}

// LoadModels decodes the required artifacts and swaps them in. On failure
// the manager enters StateError and keeps serving nothing.
func (m *Manager) LoadModels(artifacts []types.Artifact) error {
	ms, err := LoadModelSet(artifacts)
	m.mu.Lock()
	if err != nil {
		m.state = StateError
		m.err = err.Error()
		m.models = nil
	} else {
		m.state = StateReady
		m.err = ""
		m.models = ms
	}
	m.mu.Unlock()

	if err != nil {
		m.log.Error().Err(err).Msg("load models")
		m.publisher.Publish(Event{Name: EventModelsFailed, Fields: map[string]any{"error": err.Error()}})
		return err
	}
	for _, a := range ms.Artifacts {
		m.log.Info().Str("id", a.ID).Str("kind", a.Kind).Str("path", a.Path).Msg("model loaded")
	}
	m.publisher.Publish(Event{Name: EventModelsLoaded, Fields: map[string]any{"count": len(ms.Artifacts)}})
	return nil
}

func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady && m.models != nil
}

func (m *Manager) ListModels() []types.Artifact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.models == nil {
		return []types.Artifact{}
	}
	// return a shallow copy to avoid external mutation
	out := make([]types.Artifact, len(m.models.Artifacts))
	copy(out, m.models.Artifacts)
	return out
}

// PingStore probes the prediction store.
func (m *Manager) PingStore(ctx context.Context) error {
	return m.recorder.Ping(ctx)
}

// Close releases the prediction store.
func (m *Manager) Close(ctx context.Context) error {
	return m.recorder.Close(ctx)
}
