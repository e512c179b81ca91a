package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/jobs"
	"galapagos/internal/pkg/logs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ jobs.LockerCountReconciler = commands.ReconcileLockerCountsCommandHandler{}

type reconcilerMock struct{ mock.Mock }

func (m *reconcilerMock) Handle(ctx context.Context, cmd commands.ReconcileLockerCountsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestRunOnce_ReportsRepairs(t *testing.T) {
	reconciler := &reconcilerMock{}
	reconciler.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once()
	job := jobs.NewLockerCountReconciliationJob(reconciler, "", logs.Discard())

	assert.Equal(t, 3, job.RunOnce(t.Context()))
	reconciler.AssertExpectations(t)
}

func TestRunOnce_SwallowsFailures(t *testing.T) {
	reconciler := &reconcilerMock{}
	reconciler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("mongodb down")).Once()
	job := jobs.NewLockerCountReconciliationJob(reconciler, "", logs.Discard())

	assert.Zero(t, job.RunOnce(t.Context()))
	reconciler.AssertExpectations(t)
}

func TestRunOnce_BoundsThePass(t *testing.T) {
	reconciler := &reconcilerMock{}
	reconciler.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(0, nil).Once()
	job := jobs.NewLockerCountReconciliationJob(reconciler, "", logs.Discard())

	job.RunOnce(t.Context())
	reconciler.AssertExpectations(t)
}

func TestStart_RunsOnSchedule(t *testing.T) {
	reconciler := &reconcilerMock{}
	ran := make(chan struct{}, 1)
	reconciler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	manager := jobs.NewJobManager(reconciler, "@every 1s", logs.Discard())

	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("reconciliation did not run")
	}
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	manager := jobs.NewJobManager(&reconcilerMock{}, "every minute", logs.Discard())

	require.Error(t, manager.StartAll())
}
