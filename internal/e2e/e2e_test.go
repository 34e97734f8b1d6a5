package e2e

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"housepriced/internal/manager"
	"housepriced/internal/store"
	"housepriced/pkg/types"
)

func TestE2E_PredictJSON(t *testing.T) {
	rec := store.NewMemory()
	srv, _ := newServerForDir(t, fixtureModelsDir, rec)

	resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(`{"size":2000,"bedrooms":3,"age":10,"location":5}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	var out types.PredictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !out.Success {
		t.Fatalf("success=false: %s", body)
	}
	if out.Predictions.LinearRegression != 53 || out.Predictions.SVR != 50.12 {
		t.Fatalf("predictions=%+v", out.Predictions)
	}
	if out.Predictions.LogisticRegression != manager.CategoryHigh {
		t.Fatalf("category=%q", out.Predictions.LogisticRegression)
	}
	if out.BestModel != manager.BestModel() {
		t.Fatalf("best_model=%+v", out.BestModel)
	}

	recs := rec.Records()
	if len(recs) != 1 {
		t.Fatalf("records=%d", len(recs))
	}
	r := recs[0]
	if r.Source != types.SourceAPI || r.Size != 2000 || r.LinearPrediction != 53 || r.Category != manager.CategoryHigh || r.BestModel != manager.ModelLogistic {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.CreatedAt.IsZero() || r.CreatedAt.Location().String() != "UTC" {
		t.Fatalf("created_at=%v", r.CreatedAt)
	}
}

func TestE2E_PredictLowBand(t *testing.T) {
	srv, _ := newServerForDir(t, fixtureModelsDir, store.NewMemory())
	resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(`{"size":"1000","bedrooms":"3","age":10,"location":5}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	var out types.PredictResponse
	_ = json.Unmarshal(body, &out)
	if out.Predictions.LinearRegression != 33 || out.Predictions.LogisticRegression != manager.CategoryLow {
		t.Fatalf("predictions=%+v", out.Predictions)
	}
}

func TestE2E_InvalidInputNotRecorded(t *testing.T) {
	rec := store.NewMemory()
	srv, _ := newServerForDir(t, fixtureModelsDir, rec)
	resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(`{"size":2000,"bedrooms":3}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var e types.ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Success || e.Error != "missing field: age" {
		t.Fatalf("unexpected error body: %s", body)
	}
	if n := len(rec.Records()); n != 0 {
		t.Fatalf("invalid request recorded %d times", n)
	}
}

func TestE2E_FormFlow(t *testing.T) {
	rec := store.NewMemory()
	srv, _ := newServerForDir(t, fixtureModelsDir, rec)

	resp, body := httpGet(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<form") {
		t.Fatalf("index: %d", resp.StatusCode)
	}

	resp, body = httpPostForm(t, srv.URL+"/", url.Values{"size": {"2000"}, "bedrooms": {"3"}, "age": {"10"}, "location": {"5"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	page := string(body)
	for _, want := range []string{"₹ 53.0 Lakhs", "₹ 50.12 Lakhs", manager.CategoryHighLong} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	recs := rec.Records()
	if len(recs) != 1 || recs[0].Source != types.SourceForm || recs[0].Category != manager.CategoryHighLong {
		t.Fatalf("unexpected records: %+v", recs)
	}

	resp, _ = httpPostForm(t, srv.URL+"/", url.Values{"size": {"big"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad form status=%d", resp.StatusCode)
	}
}

func TestE2E_OpsEndpoints(t *testing.T) {
	srv, _ := newServerForDir(t, fixtureModelsDir, store.NewMemory())
	httpPostJSON(t, srv.URL+"/predict", []byte(`{"size":2000,"bedrooms":3,"age":10,"location":5}`))

	resp, body := httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusOK || string(body) != "ready" {
		t.Fatalf("readyz: %d %q", resp.StatusCode, body)
	}

	resp, body = httpGet(t, srv.URL+"/models")
	var models types.ModelsResponse
	if err := json.Unmarshal(body, &models); err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("models: %d %v", resp.StatusCode, err)
	}
	if len(models.Models) != len(manager.RequiredArtifacts) {
		t.Fatalf("models=%+v", models.Models)
	}
	for _, a := range models.Models {
		if a.Kind == "" || a.Features != 4 {
			t.Fatalf("artifact not annotated: %+v", a)
		}
	}

	resp, body = httpGet(t, srv.URL+"/status")
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d %v", resp.StatusCode, err)
	}
	if st.State != "ready" || st.StoreBackend != store.BackendMemory || st.PredictionsTotal != 1 {
		t.Fatalf("status=%+v", st)
	}

	resp, body = httpGet(t, srv.URL+"/metrics")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "housepriced_predictions_total") {
		t.Fatalf("metrics missing prediction counter")
	}
}

func TestE2E_NotReady503(t *testing.T) {
	// No artifacts at all: the manager refuses to serve.
	mgr := manager.NewWithConfig(manager.ManagerConfig{})
	if err := mgr.LoadModels(nil); err == nil {
		t.Fatal("expected load error with no artifacts")
	}
	srv := newServerForManager(t, mgr)

	resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(`{"size":2000,"bedrooms":3,"age":10,"location":5}`))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	resp, _ = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz=%d", resp.StatusCode)
	}
}

func TestE2E_ConcurrentPredictions(t *testing.T) {
	rec := store.NewMemory()
	srv, mgr := newServerForDir(t, fixtureModelsDir, rec)
	const n = 16
	var wg sync.WaitGroup
	codes := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader(`{"size":1800,"bedrooms":2,"age":5,"location":7}`))
			if err != nil {
				codes <- 0
				return
			}
			resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)
	for c := range codes {
		if c != http.StatusOK {
			t.Fatalf("status=%d", c)
		}
	}
	if got := len(rec.Records()); got != n {
		t.Fatalf("records=%d want %d", got, n)
	}
	if got := mgr.Status().PredictionsTotal; got != n {
		t.Fatalf("predictions_total=%d want %d", got, n)
	}
}
