package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "cancelled"} {
		got, err := ParseAppointmentStatus(s)
		require.NoError(t, err)
		assert.Equal(t, AppointmentStatus(s), got)
	}
	_, err := ParseAppointmentStatus("pending")
	assert.Error(t, err)
	_, err = ParseAppointmentStatus("")
	assert.Error(t, err)
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "scheduled to completed", from: StatusScheduled, to: StatusCompleted, want: true},
		{name: "scheduled to cancelled", from: StatusScheduled, to: StatusCancelled, want: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusScheduled, want: false},
		{name: "completed to cancelled", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusScheduled, want: false},
		{name: "cancelled to completed", from: StatusCancelled, to: StatusCompleted, want: false},
		{name: "same status no-op", from: StatusCompleted, to: StatusCompleted, want: true},
		{name: "scheduled to scheduled", from: StatusScheduled, to: StatusScheduled, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
