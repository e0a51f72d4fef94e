package health

import (
	"context"
	"encoding/json"
	"net/http"

	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog catalogstore.Repository
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the catalog and logger.
func NewHandler(catalog catalogstore.Repository, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: catalog,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Catalog  string `json:"catalog"`
	Projects int    `json:"projects"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":"loaded", "projects":7 }
//
// When the catalog cannot be read in time: 503 and
//
//	{ "status":"error", "catalog":"unavailable", "message":"Catalog unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	list, err := h.Catalog.ListProjectSummaries(ctx)
	if err != nil {
		h.Log.Error("health-check: catalog read failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Catalog: "unavailable",
			Message: "Catalog unavailable",
			Error:   err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Catalog:  "loaded",
		Projects: len(list),
	})
}
