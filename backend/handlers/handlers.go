// ABOUTME: HTTP handlers for drone design calculator API endpoints
// ABOUTME: Holds shared handler state and the JSON request/response helpers

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/markalston/drone-design-calculator/backend/config"
	"github.com/markalston/drone-design-calculator/backend/metrics"
	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
)

// defaultMaxRequestBodySize applies when no config is supplied
const defaultMaxRequestBodySize = 64 << 10

// serviceName is reported by the health endpoint
const serviceName = "drone-design-calculator"

type Handler struct {
	cfg         *config.Config
	calc        *services.DesignCalculator
	metrics     *metrics.Collector
	maxBodySize int64
}

// NewHandler creates the API handler. cfg and collector may be nil in tests.
func NewHandler(cfg *config.Config, collector *metrics.Collector) *Handler {
	h := &Handler{
		cfg:         cfg,
		calc:        services.NewDesignCalculator(),
		metrics:     collector,
		maxBodySize: defaultMaxRequestBodySize,
	}
	if cfg != nil && cfg.MaxRequestBodyBytes > 0 {
		h.maxBodySize = cfg.MaxRequestBodyBytes
	}
	return h
}

// writeJSON encodes v with the given status code. The body is encoded before
// the header is sent so an encoding failure becomes a 500, not an empty 200.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(models.ErrorResponse{
			Error: "Failed to encode response",
			Code:  status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// writeError writes a JSON error envelope.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

// writeErrorDetails writes a JSON error envelope with details.
func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// decodeJSON reads a size-limited JSON body into v. It writes the error
// response itself and returns false when the body is unusable.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.writeErrorDetails(w, "Request body too large",
				fmt.Sprintf("limit is %d bytes", tooLarge.Limit), http.StatusBadRequest)
		case errors.Is(err, io.EOF):
			h.writeError(w, "Request body is empty", http.StatusBadRequest)
		default:
			h.writeErrorDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		}
		return false
	}

	if dec.More() {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// writeValidationError maps a validation failure to a 400 response. scope
// names the design being validated when a request carries more than one.
func (h *Handler) writeValidationError(w http.ResponseWriter, scope string, err error) {
	details := err.Error()
	var invalid *services.InvalidInputError
	if errors.As(err, &invalid) {
		msgs := make([]string, len(invalid.Fields))
		for i, f := range invalid.Fields {
			msgs[i] = f.Message
		}
		details = strings.Join(msgs, "; ")
	}
	if scope != "" {
		details = scope + ": " + details
	}
	h.writeErrorDetails(w, "Invalid design inputs", details, http.StatusBadRequest)
}
