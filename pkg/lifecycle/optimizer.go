package lifecycle

import (
	"context"

	"github.com/sigapair/airlab/pkg/config"
)

// Optimizer keeps a long running database tidy.
type Optimizer interface {
	// Optimize removes lab results and notifications of reports that no
	// longer exist, removes partial batches without an overall_safety
	// row and refreshes planner statistics.
	Optimize(ctx context.Context, cfg *config.Config) error
}
