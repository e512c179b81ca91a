package commands

import (
	"context"
	"log/slog"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentRepairs bounds the counter writes in flight at once.
const maxConcurrentRepairs = 4

// ReconcileLockerCountsCommandHandler repairs the denormalized port counters
// left behind by failed secondary writes.
//
// Lockers are counted per port in the business store and compared with the
// counter stored on every port. Counters that differ are overwritten. Ports
// without lockers are expected to hold zero.
type ReconcileLockerCountsCommandHandler struct {
	lockers ports.LockerRepository
	ports   ports.PortRepository
	metrics *consistency.Metrics
	logger  *slog.Logger
}

func NewReconcileLockerCountsCommandHandler(
	lockers ports.LockerRepository,
	portRepo ports.PortRepository,
	metrics *consistency.Metrics,
	logger *slog.Logger,
) ReconcileLockerCountsCommandHandler {
	return ReconcileLockerCountsCommandHandler{
		lockers: lockers,
		ports:   portRepo,
		metrics: metrics,
		logger:  logger.With("component", "LockerCountReconciler"),
	}
}

// Handle returns the number of counters rewritten.
func (h ReconcileLockerCountsCommandHandler) Handle(ctx context.Context, cmd ReconcileLockerCountsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	counts, err := h.lockers.CountAllByPort(ctx)
	if err != nil {
		return 0, err
	}

	allPorts, err := h.ports.Find(ctx, ports.PortFilter{})
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRepairs)

	repaired := 0
	for _, port := range allPorts {
		actual := counts[port.ID()]
		if port.LockerCount() == actual {
			continue
		}

		h.logger.Info("locker counter drifted",
			"portId", port.ID(), "port", port.Name(), "stored", port.LockerCount(), "actual", actual)
		repaired++

		g.Go(func() error {
			if err := h.ports.SetLockerCount(gctx, port.ID(), actual); err != nil {
				return err
			}
			h.metrics.CounterRepairs().Inc()
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return 0, err
	}

	return repaired, nil
}
