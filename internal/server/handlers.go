// internal/server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/metrics"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/observability"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/pkg/registry"
)

type handlers struct {
	apps     map[string]apps.App
	registry *registry.AppRegistry
	obs      *observability.Observability
	logger   logger.Logger
}

func newHandlers(applications []apps.App, reg *registry.AppRegistry, obs *observability.Observability, log logger.Logger) *handlers {
	byID := make(map[string]apps.App, len(applications))
	for _, app := range applications {
		byID[app.ID()] = app
	}
	return &handlers{
		apps:     byID,
		registry: reg,
		obs:      obs,
		logger:   log,
	}
}

func (h *handlers) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/apps", h.handleApps)
	mux.HandleFunc("GET /api/apps/{id}/schema", h.handleSchema)
	mux.HandleFunc("POST /api/apps/{id}/predict", h.handlePredict)
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	ready := 0
	for _, app := range h.apps {
		if app.Ready() {
			ready++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"apps":      len(h.apps),
		"appsReady": ready,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) handleApps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry)
}

// schemaResponse is what a front-end needs to render one application's form.
type schemaResponse struct {
	ID     string                 `json:"id"`
	Meta   apps.Meta              `json:"meta"`
	Fields []validation.FieldSpec `json:"fields"`
}

func (h *handlers) handleSchema(w http.ResponseWriter, r *http.Request) {
	app, ok := h.apps[r.PathValue("id")]
	if !ok {
		writeError(w, h.logger, apperrors.NewUnknownApplicationError(r.PathValue("id")))
		return
	}

	writeJSON(w, http.StatusOK, schemaResponse{
		ID:     app.ID(),
		Meta:   app.Meta(),
		Fields: app.Form().Fields,
	})
}

func (h *handlers) handlePredict(w http.ResponseWriter, r *http.Request) {
	appID := r.PathValue("id")
	app, ok := h.apps[appID]
	if !ok {
		writeError(w, h.logger, apperrors.NewUnknownApplicationError(appID))
		return
	}

	values, stdErr := decodeBody(r)
	if stdErr != nil {
		metrics.PredictionFailures.WithLabelValues(appID, string(stdErr.Code)).Inc()
		writeError(w, h.logger, stdErr)
		return
	}

	if stdErr := h.validateAgainstSchema(appID, values); stdErr != nil {
		metrics.PredictionFailures.WithLabelValues(appID, string(stdErr.Code)).Inc()
		writeError(w, h.logger, stdErr)
		return
	}

	start := time.Now()
	result, err := app.Predict(r.Context(), values)
	elapsed := time.Since(start)
	metrics.PredictionDuration.WithLabelValues(appID).Observe(elapsed.Seconds())
	h.obs.RecordPredictionDuration(r.Context(), appID, elapsed)

	if err != nil {
		stdErr := apperrors.AsStandardError(err)
		metrics.PredictionFailures.WithLabelValues(appID, string(stdErr.Code)).Inc()
		h.obs.RecordPrediction(r.Context(), appID, "error")
		writeError(w, h.logger, stdErr)
		return
	}

	metrics.PredictionsTotal.WithLabelValues(appID).Inc()
	h.obs.RecordPrediction(r.Context(), appID, "success")
	writeJSON(w, http.StatusOK, result)
}

// decodeBody reads the request body into a value map. An empty body is
// treated as an empty submission so field defaults apply.
func decodeBody(r *http.Request) (map[string]interface{}, *apperrors.StandardError) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewInputValidationFailedError("failed to read request body")
	}
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}

	var values map[string]interface{}
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, apperrors.NewInputValidationFailedError("request body must be a JSON object")
	}
	return values, nil
}

// validateAgainstSchema runs the structural JSON-schema check for the
// application before the form-level collection applies defaults and bounds.
func (h *handlers) validateAgainstSchema(appID string, values map[string]interface{}) *apperrors.StandardError {
	entry, ok := h.registry.Find(appID)
	if !ok || len(entry.InputSchema) == 0 {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(entry.InputSchema),
		gojsonschema.NewGoLoader(values),
	)
	if err != nil {
		h.logger.WithError(err).Warn("schema validation unavailable", map[string]interface{}{
			"app": appID,
		})
		return nil
	}
	if result.Valid() {
		return nil
	}

	parts := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		parts = append(parts, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return apperrors.NewInputValidationFailedError(strings.Join(parts, "; "))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, log logger.Logger, stdErr *apperrors.StandardError) {
	status := apperrors.HTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", map[string]interface{}{
			"code":    string(stdErr.Code),
			"message": stdErr.Message,
		})
	}
	writeJSON(w, status, map[string]interface{}{"error": stdErr})
}
