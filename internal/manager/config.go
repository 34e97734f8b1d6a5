package manager

import (
	"time"

	"github.com/rs/zerolog"

	"housepriced/internal/store"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// Models may be nil; the manager then stays in StateLoading until LoadModels.
	Models *ModelSet
	// Recorder receives one record per prediction. Defaults to store.None.
	Recorder  store.Recorder
	Publisher EventPublisher
	Logger    zerolog.Logger
	// Now stamps prediction records. Defaults to time.Now.
	Now func() time.Time
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		state:     StateLoading,
		recorder:  cfg.Recorder,
		publisher: cfg.Publisher,
		log:       cfg.Logger.With().Str("component", "manager").Logger(),
		now:       cfg.Now,
		startTime: time.Now(),
	}
	// Apply defaults if unset
	if m.recorder == nil {
		m.recorder = store.None{}
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if m.now == nil {
		m.now = time.Now
	}
	if cfg.Models != nil {
		m.models = cfg.Models
		m.state = StateReady
	}
	return m
}
