// ABOUTME: Data models for what-if comparison of two drone designs
// ABOUTME: Pairs current and proposed metrics with per-metric deltas

package models

// CompareRequest is the body of a comparison request
type CompareRequest struct {
	Current  DesignInputs `json:"current"`
	Proposed DesignInputs `json:"proposed"`
}

// MetricDelta is the change in one metric between two designs
type MetricDelta struct {
	Key      MetricKey `json:"key"`
	Label    string    `json:"label"`
	Unit     string    `json:"unit,omitempty"`
	Current  float64   `json:"current"`
	Proposed float64   `json:"proposed"`
	Change   float64   `json:"change"`
}

// DesignComparison is the result of comparing a proposed design to the current one
type DesignComparison struct {
	Current  DesignMetrics   `json:"current"`
	Proposed DesignMetrics   `json:"proposed"`
	Deltas   []MetricDelta   `json:"deltas"`
	Warnings []DesignWarning `json:"warnings,omitempty"`
}

// Delta returns the delta for the given metric key
func (c DesignComparison) Delta(key MetricKey) (MetricDelta, bool) {
	for _, d := range c.Deltas {
		if d.Key == key {
			return d, true
		}
	}
	return MetricDelta{}, false
}
