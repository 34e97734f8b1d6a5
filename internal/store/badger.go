package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"housepriced/pkg/types"
)

const predictionKeyPrefix = "prediction:"

// Badger appends predictions to an embedded key-value store. Keys sort by
// creation time: prediction:<unix nanos>:<uuid>.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens the store in dir. An empty dir keeps everything in memory.
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

func predictionKey(rec types.PredictionRecord) []byte {
	// zero-padded so lexical order matches numeric order
	ts := fmt.Sprintf("%020d", rec.CreatedAt.UnixNano())
	return []byte(predictionKeyPrefix + ts + ":" + uuid.New().String())
}

func (b *Badger) Record(_ context.Context, rec types.PredictionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(predictionKey(rec), data); err != nil {
			return fmt.Errorf("set prediction: %w", err)
		}
		return nil
	})
}

// List returns stored predictions oldest first.
func (b *Badger) List(_ context.Context) ([]types.PredictionRecord, error) {
	var out []types.PredictionRecord
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(predictionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var rec types.PredictionRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

func (b *Badger) Ping(context.Context) error {
	if b.db.IsClosed() {
		return fmt.Errorf("badger: closed")
	}
	return nil
}

func (b *Badger) Close(context.Context) error { return b.db.Close() }
func (b *Badger) Backend() string             { return BackendBadger }
