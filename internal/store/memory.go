package store

import (
	"context"
	"sync"

	"housepriced/pkg/types"
)

// Memory keeps records in process. Used by tests and local runs.
type Memory struct {
	mu   sync.Mutex
	recs []types.PredictionRecord
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Record(_ context.Context, rec types.PredictionRecord) error {
	m.mu.Lock()
	m.recs = append(m.recs, rec)
	m.mu.Unlock()
	return nil
}

// Records returns a copy of everything recorded so far.
func (m *Memory) Records() []types.PredictionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.PredictionRecord, len(m.recs))
	copy(out, m.recs)
	return out
}

func (m *Memory) Ping(context.Context) error  { return nil }
func (m *Memory) Close(context.Context) error { return nil }
func (m *Memory) Backend() string             { return BackendMemory }
