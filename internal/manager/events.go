package manager

import "github.com/rs/zerolog"

// Event names published by the manager.
const (
	EventModelsLoaded = "models_loaded"
	EventModelsFailed = "models_failed"
	EventPrediction   = "prediction"
)

// Event represents a manager event.
// Minimal and stable: name + model ID and optional fields via key/values.
type Event struct {
	Name    string
	ModelID string
	Fields  map[string]any
}

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// LogPublisher writes events to a zerolog logger at debug level.
type LogPublisher struct {
	Logger zerolog.Logger
}

func (p LogPublisher) Publish(e Event) {
	p.Logger.Debug().
		Str("event", e.Name).
		Str("model", e.ModelID).
		Fields(e.Fields).
		Msg("manager event")
}
