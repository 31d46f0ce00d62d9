// ABOUTME: API envelope models shared by every endpoint
// ABOUTME: JSON-serializable structures for health, defaults, and errors

package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// DefaultsResponse carries the default design and its input floors
type DefaultsResponse struct {
	Inputs DesignInputs `json:"inputs"`
	Limits InputLimits  `json:"limits"`
}

// CalculateResponse is a metric table plus optional display rows
type CalculateResponse struct {
	DesignMetrics
	Display []DisplayRow `json:"display,omitempty"`
}

// DisplayRow is one formatted label/value pair ready for rendering
type DisplayRow struct {
	Key   MetricKey `json:"key"`
	Label string    `json:"label"`
	Value string    `json:"value"`
}
