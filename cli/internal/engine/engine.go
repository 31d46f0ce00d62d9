// ABOUTME: Calculation engines shared by the CLI commands and the TUI
// ABOUTME: Local computes in-process; Remote delegates to the backend API

package engine

import (
	"context"
	"fmt"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/client"
)

// Engine computes design metrics and comparisons
type Engine interface {
	Calculate(ctx context.Context, in models.DesignInputs) (*models.DesignMetrics, error)
	Compare(ctx context.Context, current, proposed models.DesignInputs) (*models.DesignComparison, error)
	// Name describes where calculations run, for headers and status lines
	Name() string
}

// Local runs the calculator in-process with the same floors the backend enforces
type Local struct {
	calc *services.DesignCalculator
}

// NewLocal creates an in-process engine
func NewLocal() *Local {
	return &Local{calc: services.NewDesignCalculator()}
}

// Calculate validates the inputs and computes their metrics
func (l *Local) Calculate(ctx context.Context, in models.DesignInputs) (*models.DesignMetrics, error) {
	in.ApplyDefaults()
	if err := services.ValidateInputs(in); err != nil {
		return nil, err
	}
	result := l.calc.Compute(in)
	if err := services.CheckFinite(result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compare validates both designs and compares them
func (l *Local) Compare(ctx context.Context, current, proposed models.DesignInputs) (*models.DesignComparison, error) {
	current.ApplyDefaults()
	proposed.ApplyDefaults()
	if err := services.ValidateInputs(current); err != nil {
		return nil, fmt.Errorf("current design: %w", err)
	}
	if err := services.ValidateInputs(proposed); err != nil {
		return nil, fmt.Errorf("proposed design: %w", err)
	}
	result := l.calc.Compare(current, proposed)
	if err := services.CheckFinite(result.Current); err != nil {
		return nil, fmt.Errorf("current design: %w", err)
	}
	if err := services.CheckFinite(result.Proposed); err != nil {
		return nil, fmt.Errorf("proposed design: %w", err)
	}
	return &result, nil
}

// Name implements Engine
func (l *Local) Name() string {
	return "local"
}

// Remote sends calculations to a backend
type Remote struct {
	client *client.Client
}

// NewRemote creates an engine backed by the given API client
func NewRemote(c *client.Client) *Remote {
	return &Remote{client: c}
}

// Calculate asks the backend for the metric table
func (r *Remote) Calculate(ctx context.Context, in models.DesignInputs) (*models.DesignMetrics, error) {
	resp, err := r.client.Calculate(ctx, in, "")
	if err != nil {
		return nil, err
	}
	return &resp.DesignMetrics, nil
}

// Compare asks the backend to compare two designs
func (r *Remote) Compare(ctx context.Context, current, proposed models.DesignInputs) (*models.DesignComparison, error) {
	return r.client.Compare(ctx, current, proposed)
}

// Name implements Engine
func (r *Remote) Name() string {
	return r.client.BaseURL()
}
