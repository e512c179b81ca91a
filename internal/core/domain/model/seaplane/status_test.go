package seaplane_test

import (
	"testing"

	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	got, err := seaplane.ParseStatus("at_port")
	require.NoError(t, err)
	assert.Equal(t, seaplane.AtPort, got)

	got, err = seaplane.ParseStatus("IN_FLIGHT")
	require.NoError(t, err)
	assert.Equal(t, seaplane.InFlight, got)

	_, err = seaplane.ParseStatus("CRASHED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_ChangeTo(t *testing.T) {
	tests := []struct {
		name    string
		from    seaplane.Status
		to      seaplane.Status
		wantErr error
	}{
		{"available to at port", seaplane.Available, seaplane.AtPort, nil},
		{"at port to maintenance", seaplane.AtPort, seaplane.Maintenance, nil},
		{"maintenance to available", seaplane.Maintenance, seaplane.Available, nil},
		{"available to available", seaplane.Available, seaplane.Available, nil},
		{"in flight restated", seaplane.InFlight, seaplane.InFlight, nil},
		{"in flight to available", seaplane.InFlight, seaplane.Available, errs.ErrInvalidTransition},
		{"in flight to maintenance", seaplane.InFlight, seaplane.Maintenance, errs.ErrInvalidTransition},
		{"ground to in flight", seaplane.Available, seaplane.InFlight, errs.ErrInvalidTransition},
		{"unknown target", seaplane.Available, seaplane.Unknown, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.ChangeTo(tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestStatus_TakeOffAndLand(t *testing.T) {
	got, err := seaplane.Available.TakeOff()
	require.NoError(t, err)
	assert.Equal(t, seaplane.InFlight, got)

	got, err = seaplane.AtPort.TakeOff()
	require.NoError(t, err)
	assert.Equal(t, seaplane.InFlight, got)

	_, err = seaplane.Maintenance.TakeOff()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.ErrorIs(t, err, seaplane.ErrSeaplaneInMaintenance)

	_, err = seaplane.InFlight.TakeOff()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.ErrorIs(t, err, seaplane.ErrSeaplaneInFlight)

	got, err = seaplane.InFlight.Land()
	require.NoError(t, err)
	assert.Equal(t, seaplane.AtPort, got)

	_, err = seaplane.Available.Land()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
