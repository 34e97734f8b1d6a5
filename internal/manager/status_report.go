package manager

import (
	"time"

	"housepriced/pkg/types"
)

// breakerReporter is implemented by store.Guarded.
type breakerReporter interface {
	BreakerState() string
}

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Err: m.err}
}

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	snap := m.Snapshot()
	now := time.Now()
	resp := types.StatusResponse{
		State:              string(snap.State),
		Models:             m.ListModels(),
		StoreBackend:       m.recorder.Backend(),
		PredictionsTotal:   m.predictions.Load(),
		StoreFailuresTotal: m.storeFailures.Load(),
		LastError:          snap.Err,
		UptimeSeconds:      int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:     now.Unix(),
	}
	if br, ok := m.recorder.(breakerReporter); ok {
		resp.StoreBreaker = br.BreakerState()
	}
	return resp
}
