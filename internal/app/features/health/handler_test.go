package health_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/portfolio/internal/app/features/health"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/dalemusser/portfolio/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status   string `json:"status"`
	Catalog  string `json:"catalog"`
	Projects int    `json:"projects"`
	Error    string `json:"error"`
}

func TestServe_CatalogLoaded(t *testing.T) {
	handler := health.NewHandler(testutil.ListingCatalog(t, 7), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var got response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.Status != "ok" || got.Catalog != "loaded" || got.Projects != 7 {
		t.Errorf("unexpected response: %+v", got)
	}
}

// brokenCatalog fails every list call.
type brokenCatalog struct{ catalogstore.Repository }

func (brokenCatalog) ListProjectSummaries(ctx context.Context) ([]models.ProjectSummary, error) {
	return nil, context.DeadlineExceeded
}

func TestServe_CatalogUnavailable(t *testing.T) {
	handler := health.NewHandler(brokenCatalog{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	var got response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.Status != "error" || got.Catalog != "unavailable" || got.Error == "" {
		t.Errorf("unexpected response: %+v", got)
	}
}
