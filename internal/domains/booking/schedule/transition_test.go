package schedule_test

import (
	"testing"

	"lodge/internal/domains/booking/schedule"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{name: "pending to confirmed", current: schedule.StatusPending, next: schedule.StatusConfirmed, want: true},
		{name: "pending to cancelled", current: schedule.StatusPending, next: schedule.StatusCancelled, want: true},
		{name: "pending to pending", current: schedule.StatusPending, next: schedule.StatusPending, want: false},
		{name: "confirmed to cancelled", current: schedule.StatusConfirmed, next: schedule.StatusCancelled, want: true},
		{name: "confirmed to pending", current: schedule.StatusConfirmed, next: schedule.StatusPending, want: false},
		{name: "confirmed to confirmed", current: schedule.StatusConfirmed, next: schedule.StatusConfirmed, want: false},
		{name: "cancelled is terminal", current: schedule.StatusCancelled, next: schedule.StatusPending, want: false},
		{name: "cancelled to confirmed", current: schedule.StatusCancelled, next: schedule.StatusConfirmed, want: false},
		{name: "unknown status", current: "archived", next: schedule.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.CanTransition(tt.current, tt.next))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, schedule.ValidStatus(schedule.StatusPending))
	assert.True(t, schedule.ValidStatus(schedule.StatusConfirmed))
	assert.True(t, schedule.ValidStatus(schedule.StatusCancelled))
	assert.False(t, schedule.ValidStatus("archived"))
	assert.False(t, schedule.ValidStatus(""))
}
