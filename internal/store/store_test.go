package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"housepriced/pkg/types"
)

func sampleRecord(at time.Time) types.PredictionRecord {
	return types.PredictionRecord{
		Size:             2000,
		Bedrooms:         3,
		Age:              10,
		Location:         5,
		LinearPrediction: 45.67,
		SVRPrediction:    44.1,
		Category:         "High Price",
		BestModel:        "Logistic Regression",
		Source:           types.SourceAPI,
		CreatedAt:        at,
	}
}

// flaky fails every write with err, or blocks until ctx is done when block is set.
type flaky struct {
	name  string
	err   error
	block bool
	calls int
}

func (f *flaky) Record(ctx context.Context, _ types.PredictionRecord) error {
	f.calls++
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}
func (f *flaky) Ping(context.Context) error  { return f.err }
func (f *flaky) Close(context.Context) error { return nil }
func (f *flaky) Backend() string             { return f.name }

func TestResolveBackend(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{}, BackendNone},
		{Config{MongoURI: "mongodb://db:27017"}, BackendMongo},
		{Config{Backend: "SQLite", MongoURI: "mongodb://db:27017"}, BackendSQLite},
		{Config{Backend: " memory "}, BackendMemory},
	}
	for _, tc := range cases {
		if got := ResolveBackend(tc.cfg); got != tc.want {
			t.Fatalf("ResolveBackend(%+v)=%q want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestOpen_NoneMemoryUnknown(t *testing.T) {
	ctx := context.Background()
	rec, err := Open(ctx, Config{})
	if err != nil {
		t.Fatalf("open none: %v", err)
	}
	if rec.Backend() != BackendNone {
		t.Fatalf("backend=%s", rec.Backend())
	}
	if err := rec.Record(ctx, sampleRecord(time.Now())); err != nil {
		t.Fatalf("none record: %v", err)
	}

	rec, err = Open(ctx, Config{Backend: BackendMemory, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	g, ok := rec.(*Guarded)
	if !ok {
		t.Fatalf("expected *Guarded, got %T", rec)
	}
	if err := rec.Record(ctx, sampleRecord(time.Now())); err != nil {
		t.Fatalf("memory record: %v", err)
	}
	mem := g.Unwrap().(*Memory)
	if n := len(mem.Records()); n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
	if g.BreakerState() != "closed" {
		t.Fatalf("breaker=%s", g.BreakerState())
	}

	if _, err := Open(ctx, Config{Backend: "cassandra"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestSQLite_RecordAndCount(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "predictions.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Record(ctx, sampleRecord(time.Now())); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
	var src, created string
	if err := s.db.QueryRowContext(ctx, `SELECT source, created_at FROM predictions LIMIT 1`).Scan(&src, &created); err != nil {
		t.Fatalf("select: %v", err)
	}
	if src != "API" {
		t.Fatalf("source=%q", src)
	}
	if _, err := time.Parse(time.RFC3339Nano, created); err != nil {
		t.Fatalf("created_at %q: %v", created, err)
	}
}

func TestBadger_InMemoryOrdered(t *testing.T) {
	ctx := context.Background()
	b, err := OpenBadger("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close(ctx)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := sampleRecord(base.Add(time.Second))
	second.Source = types.SourceForm
	if err := b.Record(ctx, second); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := b.Record(ctx, sampleRecord(base)); err != nil {
		t.Fatalf("record: %v", err)
	}
	recs, err := b.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if !recs[0].CreatedAt.Equal(base) || recs[1].Source != types.SourceForm {
		t.Fatalf("unexpected order: %+v", recs)
	}
	if err := b.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestGuarded_BreakerOpensAfterFailures(t *testing.T) {
	f := &flaky{name: "flaky-open", err: errors.New("boom")}
	g := NewGuarded(f, GuardConfig{BreakerFailures: 2, BreakerCooldown: time.Hour, Logger: zerolog.Nop()})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := g.Record(ctx, sampleRecord(time.Now())); err == nil {
			t.Fatalf("expected write error")
		}
	}
	if g.BreakerState() != "open" {
		t.Fatalf("breaker=%s want open", g.BreakerState())
	}
	err := g.Record(ctx, sampleRecord(time.Now()))
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("backend should not be called while open, calls=%d", f.calls)
	}
	if g.Failures() != 3 {
		t.Fatalf("failures=%d want 3", g.Failures())
	}
	if v := testutil.ToFloat64(storeWritesTotal.WithLabelValues("flaky-open", resultError)); v != 2 {
		t.Fatalf("error writes=%v want 2", v)
	}
	if v := testutil.ToFloat64(storeWritesTotal.WithLabelValues("flaky-open", resultRejected)); v != 1 {
		t.Fatalf("rejected writes=%v want 1", v)
	}
	if v := testutil.ToFloat64(storeBreakerState.WithLabelValues("flaky-open")); v != 2 {
		t.Fatalf("breaker gauge=%v want 2", v)
	}
}

func TestGuarded_WriteTimeout(t *testing.T) {
	f := &flaky{name: "flaky-slow", block: true}
	g := NewGuarded(f, GuardConfig{WriteTimeout: 20 * time.Millisecond, Logger: zerolog.Nop()})
	start := time.Now()
	err := g.Record(context.Background(), sampleRecord(time.Now()))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("write was not bounded by timeout")
	}
}

func TestGuarded_IgnoresCallerCancellation(t *testing.T) {
	mem := NewMemory()
	g := NewGuarded(mem, GuardConfig{Logger: zerolog.Nop()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Record(ctx, sampleRecord(time.Now())); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(mem.Records()) != 1 {
		t.Fatalf("record dropped after caller cancellation")
	}
}
