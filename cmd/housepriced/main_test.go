package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"housepriced/pkg/types"
)

var fixtureArtifacts = map[string]string{
	"linear_model.json":    `{"kind":"linear_regression","coef":[0.02,1,-0.1,2],"intercept":1}`,
	"svr_model.json":       `{"kind":"svr","kernel":"linear","support_vectors":[[1,0,0,0]],"dual_coef":[10],"intercept":40.125}`,
	"svr_scaler.json":      `{"kind":"standard_scaler","mean":[1500,3,10,5],"scale":[500,1,5,2]}`,
	"logistic_model.json":  `{"kind":"logistic_regression","coef":[[1,0,0,0]],"intercept":[0],"classes":[0,1]}`,
	"logistic_scaler.json": `{"kind":"standard_scaler","mean":[1500,3,10,5],"scale":[500,1,5,2]}`,
}

func writeModels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixtureArtifacts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// run executes the CLI with an empty environment and returns stdout.
func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	getenv := func(k string) string { return env[k] }
	cmd := newRootCmd(getenv)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredict_Table(t *testing.T) {
	dir := writeModels(t)
	out, err := run(t, nil, "predict", "--models-dir", dir, "--log-level", "off",
		"--size", "2000", "--bedrooms", "3", "--age", "10", "--location", "5")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	for _, want := range []string{"₹ 53.0 Lakhs", "₹ 50.12 Lakhs", "High Price", "best model: Logistic Regression"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPredict_JSON(t *testing.T) {
	dir := writeModels(t)
	out, err := run(t, nil, "predict", "--models-dir", dir, "--log-level", "off", "--json",
		"--size", "1000", "--bedrooms", "3", "--age", "10", "--location", "5")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	var resp types.PredictResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if !resp.Success || resp.Predictions.LinearRegression != 33 || resp.Predictions.SVR != 30.12 || resp.Predictions.LogisticRegression != "Low Price" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPredict_RecordsToSQLite(t *testing.T) {
	dir := writeModels(t)
	db := filepath.Join(t.TempDir(), "preds.db")
	env := map[string]string{"HOUSEPRICED_STORE": "sqlite", "HOUSEPRICED_STORE_PATH": db}
	if _, err := run(t, env, "predict", "--models-dir", dir, "--log-level", "off", "--record",
		"--size", "2000", "--bedrooms", "3", "--age", "10", "--location", "5"); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if _, err := os.Stat(db); err != nil {
		t.Fatalf("sqlite file not created: %v", err)
	}
}

func TestPredict_RequiresFeatures(t *testing.T) {
	if _, err := run(t, nil, "predict", "--size", "2000"); err == nil {
		t.Fatal("expected error for missing required flags")
	}
}

func TestPredict_MissingModels(t *testing.T) {
	_, err := run(t, nil, "predict", "--models-dir", t.TempDir(), "--log-level", "off",
		"--size", "2000", "--bedrooms", "3", "--age", "10", "--location", "5")
	if err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("expected model not found, got %v", err)
	}
}

func TestServe_FailsWithoutModels(t *testing.T) {
	_, err := run(t, nil, "serve", "--models-dir", t.TempDir(), "--log-level", "off", "--store", "memory", "--addr", "127.0.0.1:0")
	if err == nil || !strings.Contains(err.Error(), "model not found: linear_model") {
		t.Fatalf("expected startup failure, got %v", err)
	}
	_, err = run(t, nil, "serve", "--models-dir", filepath.Join(t.TempDir(), "absent"), "--log-level", "off", "--addr", "127.0.0.1:0")
	if err == nil || !strings.Contains(err.Error(), "scan models dir") {
		t.Fatalf("expected scan failure, got %v", err)
	}
}

func TestModels_ListsAnnotatedArtifacts(t *testing.T) {
	dir := writeModels(t)
	out, err := run(t, nil, "models", "--models-dir", dir)
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	for _, want := range []string{"linear_model", "svr_scaler", "standard_scaler", "logistic_regression"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPingDB(t *testing.T) {
	out, err := run(t, nil, "ping-db", "--store", "memory", "--log-level", "off")
	if err != nil {
		t.Fatalf("ping-db: %v", err)
	}
	if !strings.Contains(out, "memory store reachable") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPingDB_UnknownBackend(t *testing.T) {
	if _, err := run(t, nil, "ping-db", "--store", "redis"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestOptionsLoad_Precedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "housepriced.yaml")
	body := "addr: \":6000\"\nmodels_dir: from-file\nstore:\n  backend: badger\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{"CONFIG_PATH": cfgPath, "HOUSEPRICED_MODELS_DIR": "from-env"}
	opts := &options{getenv: func(k string) string { return env[k] }, store: "memory"}
	cfg, err := opts.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":6000" {
		t.Fatalf("addr=%q, want file value", cfg.Addr)
	}
	if cfg.ModelsDir != "from-env" {
		t.Fatalf("models_dir=%q, want env value", cfg.ModelsDir)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("backend=%q, want flag value", cfg.Store.Backend)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log_format=%q, want default", cfg.LogFormat)
	}
}

func TestRequestLogDefault(t *testing.T) {
	cases := map[string]string{"trace": "debug", "debug": "debug", "info": "info", "warn": "error", "off": "off", "": "info"}
	for in, want := range cases {
		if got := requestLogDefault(in); got != want {
			t.Fatalf("requestLogDefault(%q)=%q want %q", in, got, want)
		}
	}
}
