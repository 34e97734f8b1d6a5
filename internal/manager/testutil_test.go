package manager

import (
	"os"
	"path/filepath"
	"testing"

	"housepriced/internal/registry"
	"housepriced/pkg/types"
)

// Fixture models for features [size, bedrooms, age, location]:
//   linear   = 1 + 0.02*size + bedrooms - 0.1*age + 2*location
//   svr      = 40.125 + 10 * (size-1500)/500
//   logistic = high when size > 1500
var fixtureArtifacts = map[string]string{
	"linear_model.json": `{"kind":"linear_regression","coef":[0.02,1,-0.1,2],"intercept":1}`,
	"svr_model.yaml": `kind: svr
kernel: linear
support_vectors:
  - [1, 0, 0, 0]
dual_coef: [10]
intercept: 40.125
`,
	"svr_scaler.toml": `kind = "standard_scaler"
mean = [1500.0, 3.0, 10.0, 5.0]
scale = [500.0, 1.0, 5.0, 2.0]
`,
	"logistic_model.json":  `{"kind":"logistic_regression","coef":[[1,0,0,0]],"intercept":[0],"classes":[0,1]}`,
	"logistic_scaler.json": `{"kind":"standard_scaler","mean":[1500,3,10,5],"scale":[500,1,5,2]}`,
}

func writeFixtureModels(t *testing.T, skip ...string) string {
	t.Helper()
	dir := t.TempDir()
	skipped := map[string]bool{}
	for _, s := range skip {
		skipped[s] = true
	}
	for name, body := range fixtureArtifacts {
		if skipped[name] {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func scanFixture(t *testing.T, skip ...string) []types.Artifact {
	t.Helper()
	arts, err := registry.LoadDir(writeFixtureModels(t, skip...))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return arts
}

func mustModelSet(t *testing.T) *ModelSet {
	t.Helper()
	ms, err := LoadModelSet(scanFixture(t))
	if err != nil {
		t.Fatalf("load model set: %v", err)
	}
	return ms
}
