// Package store persists prediction records. Writes are best effort: the
// service never reads records back, and a failed write must not fail the
// request that produced it.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"housepriced/pkg/types"
)

// Backend names accepted by Open.
const (
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Defaults applied when corresponding Config fields are unset.
const (
	DefaultMongoURI        = "mongodb://localhost:27017"
	DefaultDatabase        = "housing_db"
	DefaultCollection      = "predictions"
	DefaultSQLitePath      = "housepriced.db"
	DefaultBadgerPath      = "housepriced-badger"
	defaultWriteTimeout    = 2 * time.Second
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// Recorder persists prediction records.
type Recorder interface {
	Record(ctx context.Context, rec types.PredictionRecord) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Backend() string
}

// Config selects and tunes a backend.
type Config struct {
	// Backend is one of mongo, sqlite, badger, memory, none. Empty selects
	// mongo when MongoURI is set, none otherwise.
	Backend    string
	MongoURI   string
	Database   string
	Collection string
	// Path is the sqlite file or badger directory.
	Path string

	WriteTimeout    time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration

	Logger zerolog.Logger
}

// ResolveBackend returns the effective backend name for cfg.
func ResolveBackend(cfg Config) string {
	b := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if b != "" {
		return b
	}
	if strings.TrimSpace(cfg.MongoURI) != "" {
		return BackendMongo
	}
	return BackendNone
}

// Open builds the configured backend. Every backend except none is wrapped
// in a Guarded recorder.
func Open(ctx context.Context, cfg Config) (Recorder, error) {
	var (
		rec Recorder
		err error
	)
	switch ResolveBackend(cfg) {
	case BackendMongo:
		rec, err = OpenMongo(ctx, cfg.MongoURI, orDefault(cfg.Database, DefaultDatabase), orDefault(cfg.Collection, DefaultCollection))
	case BackendSQLite:
		rec, err = OpenSQLite(orDefault(cfg.Path, DefaultSQLitePath))
	case BackendBadger:
		rec, err = OpenBadger(orDefault(cfg.Path, DefaultBadgerPath))
	case BackendMemory:
		rec = NewMemory()
	case BackendNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", ResolveBackend(cfg), err)
	}
	return NewGuarded(rec, GuardConfig{
		WriteTimeout:    cfg.WriteTimeout,
		BreakerFailures: cfg.BreakerFailures,
		BreakerCooldown: cfg.BreakerCooldown,
		Logger:          cfg.Logger,
	}), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// None discards every record.
type None struct{}

func (None) Record(context.Context, types.PredictionRecord) error { return nil }
func (None) Ping(context.Context) error                           { return nil }
func (None) Close(context.Context) error                          { return nil }
func (None) Backend() string                                      { return BackendNone }
