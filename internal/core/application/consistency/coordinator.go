package consistency

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Step is one read or write of a plan.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Plan describes a cross-store operation.
type Plan struct {
	// Operation names the plan in logs and metrics, e.g. "add_locker".
	Operation   string
	Checks      []Step
	Primary     Step
	Secondaries []Step
}

// Result reports what happened after the primary committed.
type Result struct {
	OperationID string
	// FailedSecondaries lists the steps that left an inconsistency behind.
	FailedSecondaries []string
}

// Degraded reports whether a secondary write failed.
func (r Result) Degraded() bool {
	return len(r.FailedSecondaries) > 0
}

// Coordinator runs plans. It holds no per-operation state and is safe for
// concurrent use.
type Coordinator struct {
	logger  *slog.Logger
	metrics *Metrics
}

func NewCoordinator(logger *slog.Logger, metrics *Metrics) *Coordinator {
	return &Coordinator{
		logger:  logger.With("component", "ConsistencyCoordinator"),
		metrics: metrics,
	}
}

// Execute runs the checks, then the primary write, then every secondary
// write. The returned error is the first check or primary failure; secondary
// failures are only visible in the Result.
func (c *Coordinator) Execute(ctx context.Context, plan Plan) (Result, error) {
	result := Result{OperationID: uuid.NewString()}
	logger := c.logger.With("operation", plan.Operation, "operationId", result.OperationID)

	for _, check := range plan.Checks {
		if err := check.Run(ctx); err != nil {
			c.metrics.Plans(plan.Operation, outcomeRejected).Inc()
			logger.Debug("check rejected plan", "step", check.Name, "error", err)
			return result, err
		}
	}

	if err := plan.Primary.Run(ctx); err != nil {
		c.metrics.Plans(plan.Operation, outcomeFailed).Inc()
		logger.Error("primary write failed", "step", plan.Primary.Name, "error", err)
		return result, err
	}

	for _, secondary := range plan.Secondaries {
		if err := secondary.Run(ctx); err != nil {
			result.FailedSecondaries = append(result.FailedSecondaries, secondary.Name)
			c.metrics.SecondaryFailures(plan.Operation, secondary.Name).Inc()
			logger.Warn("secondary write failed, stores are inconsistent until repaired",
				"step", secondary.Name, "error", err)
		}
	}

	if result.Degraded() {
		c.metrics.Plans(plan.Operation, outcomeDegraded).Inc()
	} else {
		c.metrics.Plans(plan.Operation, outcomeCommitted).Inc()
	}

	return result, nil
}
