package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write temp file: %v", err)
		}
	}
}

func TestArtifactScanner_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "linear_model.json", "svr_model.YAML", "svr_scaler.toml", "linear_model.pkl", "README.md")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	models, err := NewArtifactScanner().Scan(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 artifacts, got %d: %+v", len(models), models)
	}
	want := []struct{ id, format string }{
		{"linear_model", "json"},
		{"svr_model", "yaml"},
		{"svr_scaler", "toml"},
	}
	for i, w := range want {
		if models[i].ID != w.id || models[i].Format != w.format {
			t.Fatalf("artifact %d = %+v, want id=%s format=%s", i, models[i], w.id, w.format)
		}
		if !filepath.IsAbs(models[i].Path) {
			t.Fatalf("path not absolute: %s", models[i].Path)
		}
	}
}

func TestArtifactScanner_RejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "svr_model.json", "svr_model.toml")
	if _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected duplicate artifact error")
	}
}

func TestArtifactScanner_MissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestArtifactScanner_ExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	sub := filepath.Join(home, "models")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, sub, "x.json")
	models, err := LoadDir("~/models")
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(models) != 1 || models[0].ID != "x" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.json", "b.json")
	models, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a, ok := Find(models, "b"); !ok || a.ID != "b" {
		t.Fatalf("Find(b) = %+v, %v", a, ok)
	}
	if _, ok := Find(models, "c"); ok {
		t.Fatalf("Find(c) should miss")
	}
}
