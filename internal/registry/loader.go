package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"housepriced/internal/common/fsutil"
	"housepriced/pkg/types"
)

// Scanner discovers model artifacts in a directory.
type Scanner struct{}

// NewArtifactScanner returns a scanner for .json, .yaml/.yml and .toml artifacts.
func NewArtifactScanner() *Scanner { return &Scanner{} }

// Scan lists artifact files in dir. The artifact ID is the filename without its
// extension; two files sharing an ID (e.g. svr_model.json and svr_model.toml)
// are rejected since neither can be preferred.
func (s *Scanner) Scan(dir string) ([]types.Artifact, error) {
	abs, err := fsutil.AbsDir(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	seen := make(map[string]string)
	var out []types.Artifact
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		id, ok := fsutil.SplitExt(name)
		if !ok {
			continue
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate artifact %q: %s and %s", id, prev, name)
		}
		seen[id] = name
		out = append(out, types.Artifact{
			ID:     id,
			Path:   filepath.Join(abs, name),
			Format: fsutil.FormatOf(name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadDir scans dir with the default scanner.
func LoadDir(dir string) ([]types.Artifact, error) {
	return NewArtifactScanner().Scan(dir)
}

// Find returns the artifact with the given id.
func Find(artifacts []types.Artifact, id string) (types.Artifact, bool) {
	for _, a := range artifacts {
		if a.ID == id {
			return a, true
		}
	}
	return types.Artifact{}, false
}
