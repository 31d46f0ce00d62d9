// ABOUTME: HTTP handlers for design calculation, comparison, and defaults
// ABOUTME: Validates input floors before handing inputs to the calculator

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
)

// Defaults returns the default design inputs and their floors.
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.DefaultsResponse{
		Inputs: models.DefaultInputs(),
		Limits: models.Limits(),
	})
}

// Calculate computes the metric table for one design.
// ?display=precise|whole adds formatted rows to the response.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	displayParam := r.URL.Query().Get("display")
	style, err := services.ParseDisplayStyle(displayParam)
	if err != nil {
		h.writeErrorDetails(w, "Invalid display style", err.Error(), http.StatusBadRequest)
		return
	}

	var inputs models.DesignInputs
	if !h.decodeJSON(w, r, &inputs) {
		return
	}

	inputs.ApplyDefaults()
	if err := services.ValidateInputs(inputs); err != nil {
		slog.Debug("Rejected design inputs", "error", err)
		h.writeValidationError(w, "", err)
		return
	}

	result := h.calc.Compute(inputs)
	if err := services.CheckFinite(result); err != nil {
		slog.Debug("Rejected design inputs", "error", err)
		h.writeValidationError(w, "", err)
		return
	}
	h.metrics.ObserveCalculation(result)

	resp := models.CalculateResponse{DesignMetrics: result}
	if displayParam != "" {
		resp.Display = services.FormatDisplay(result, style)
	}

	slog.Debug("Design calculated",
		"variant", result.Variant,
		"metrics", len(result.Metrics),
		"warnings", len(result.Warnings),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

// Compare computes a what-if comparison between two designs.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	req.Current.ApplyDefaults()
	req.Proposed.ApplyDefaults()

	for _, side := range []struct {
		name   string
		inputs models.DesignInputs
	}{
		{"current", req.Current},
		{"proposed", req.Proposed},
	} {
		if err := services.ValidateInputs(side.inputs); err != nil {
			h.writeValidationError(w, side.name+" design", err)
			return
		}
	}

	comparison := h.calc.Compare(req.Current, req.Proposed)
	if err := services.CheckFinite(comparison.Current); err != nil {
		h.writeValidationError(w, "current design", err)
		return
	}
	if err := services.CheckFinite(comparison.Proposed); err != nil {
		h.writeValidationError(w, "proposed design", err)
		return
	}
	h.metrics.ObserveCalculation(comparison.Current)
	h.metrics.ObserveCalculation(comparison.Proposed)

	h.writeJSON(w, http.StatusOK, comparison)
}
