package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"housepriced/internal/httpapi"
	"housepriced/internal/manager"
	"housepriced/internal/registry"
	"housepriced/internal/store"
)

// fixtureModelsDir holds artifacts with hand-computable outputs:
//   linear   = 1 + 0.02*size + bedrooms - 0.1*age + 2*location
//   svr      = 40.125 + 10 * (size-1500)/500
//   logistic = high when size > 1500
const fixtureModelsDir = "testdata/models"

func newServerForDir(t *testing.T, modelsDir string, rec store.Recorder) (*httptest.Server, *manager.Manager) {
	t.Helper()
	mgr := manager.NewWithConfig(manager.ManagerConfig{Recorder: rec})
	artifacts, err := registry.LoadDir(modelsDir)
	if err != nil {
		t.Fatalf("scan models: %v", err)
	}
	if err := mgr.LoadModels(artifacts); err != nil {
		t.Fatalf("load models: %v", err)
	}
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	return do(t, req)
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

func httpPostForm(t *testing.T, target string, v url.Values) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, strings.NewReader(v.Encode()))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func newServerForManager(t *testing.T, mgr *manager.Manager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv
}
