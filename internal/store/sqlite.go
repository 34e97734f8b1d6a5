package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"housepriced/pkg/types"
)

// SQLiteSchema creates the predictions table. Timestamps are RFC 3339 UTC.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS predictions (
    id                TEXT PRIMARY KEY,
    size              REAL NOT NULL,
    bedrooms          INTEGER NOT NULL,
    age               INTEGER NOT NULL,
    location          INTEGER NOT NULL,
    linear_prediction REAL NOT NULL,
    svr_prediction    REAL NOT NULL,
    category          TEXT NOT NULL,
    best_model        TEXT NOT NULL,
    source            TEXT NOT NULL,
    created_at        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at);
`

// SQLite writes predictions to a local database file.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Record(ctx context.Context, rec types.PredictionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO predictions (id, size, bedrooms, age, location, linear_prediction, svr_prediction, category, best_model, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), rec.Size, rec.Bedrooms, rec.Age, rec.Location,
		rec.LinearPrediction, rec.SVRPrediction, rec.Category, rec.BestModel,
		string(rec.Source), rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// Count returns the number of stored predictions.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *SQLite) Close(context.Context) error    { return s.db.Close() }
func (s *SQLite) Backend() string                { return BackendSQLite }
