package schedule_test

import (
	"testing"
	"time"

	"lodge/internal/domains/booking/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestIndex_Insert_HalfOpenRanges(t *testing.T) {
	var ix schedule.Index

	// Booking A holds June 1 (inclusive) through June 5 (exclusive).
	require.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusConfirmed))

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:    "overlapping stay is rejected",
			start:   date(2026, 6, 4),
			end:     date(2026, 6, 8),
			wantErr: schedule.ErrConflict,
		},
		{
			name:    "check-in on checkout day is allowed",
			start:   date(2026, 6, 5),
			end:     date(2026, 6, 8),
			wantErr: nil,
		},
		{
			name:    "stay fully inside an existing one is rejected",
			start:   date(2026, 6, 2),
			end:     date(2026, 6, 3),
			wantErr: schedule.ErrConflict,
		},
		{
			name:    "stay enclosing an existing one is rejected",
			start:   date(2026, 5, 30),
			end:     date(2026, 6, 10),
			wantErr: schedule.ErrConflict,
		},
		{
			name:    "checkout on check-in day is allowed",
			start:   date(2026, 5, 28),
			end:     date(2026, 6, 1),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scratch := ix
			err := scratch.Insert(tt.start, tt.end, "candidate", schedule.StatusPending)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIndex_Insert_InvalidRange(t *testing.T) {
	var ix schedule.Index

	assert.ErrorIs(t, ix.Insert(date(2026, 6, 5), date(2026, 6, 5), "b1", schedule.StatusPending), schedule.ErrInvalidRange)
	assert.ErrorIs(t, ix.Insert(date(2026, 6, 5), date(2026, 6, 1), "b1", schedule.StatusPending), schedule.ErrInvalidRange)
	assert.Equal(t, 0, ix.Len())
}

func TestIndex_Insert_KeepsStartOrder(t *testing.T) {
	var ix schedule.Index

	require.NoError(t, ix.Insert(date(2026, 7, 10), date(2026, 7, 12), "late", schedule.StatusConfirmed))
	require.NoError(t, ix.Insert(date(2026, 7, 1), date(2026, 7, 3), "early", schedule.StatusConfirmed))
	require.NoError(t, ix.Insert(date(2026, 7, 5), date(2026, 7, 8), "middle", schedule.StatusConfirmed))

	entries := ix.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "early", entries[0].BookingID)
	assert.Equal(t, "middle", entries[1].BookingID)
	assert.Equal(t, "late", entries[2].BookingID)
}

func TestIndex_Remove_FreesRange(t *testing.T) {
	var ix schedule.Index

	require.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusConfirmed))
	assert.ErrorIs(t, ix.Insert(date(2026, 6, 2), date(2026, 6, 4), "booking-b", schedule.StatusPending), schedule.ErrConflict)

	assert.True(t, ix.Remove("booking-a"))
	assert.False(t, ix.Remove("booking-a"))

	assert.NoError(t, ix.Insert(date(2026, 6, 2), date(2026, 6, 4), "booking-b", schedule.StatusPending))
}

func TestIndex_UpdateStatus_CancelledDropsOutOfOverlap(t *testing.T) {
	var ix schedule.Index

	require.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusPending))
	assert.True(t, ix.Overlaps(date(2026, 6, 2), date(2026, 6, 4)))

	require.NoError(t, ix.UpdateStatus("booking-a", schedule.StatusCancelled))
	assert.False(t, ix.Overlaps(date(2026, 6, 2), date(2026, 6, 4)))

	// The cancelled entry still exists, so a fresh stay over the same dates
	// is admitted alongside it.
	assert.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-b", schedule.StatusPending))
}

func TestIndex_UpdateStatus_UnknownBooking(t *testing.T) {
	var ix schedule.Index

	assert.ErrorIs(t, ix.UpdateStatus("ghost", schedule.StatusConfirmed), schedule.ErrNotInIndex)
}

func TestIndex_Overlaps_PendingBlocksToo(t *testing.T) {
	var ix schedule.Index

	require.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusPending))
	assert.True(t, ix.Overlaps(date(2026, 6, 4), date(2026, 6, 8)))
}

func TestIndex_Get(t *testing.T) {
	var ix schedule.Index

	require.NoError(t, ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusConfirmed))

	entry, ok := ix.Get("booking-a")
	require.True(t, ok)
	assert.Equal(t, date(2026, 6, 1), entry.Start)
	assert.Equal(t, date(2026, 6, 5), entry.End)
	assert.Equal(t, schedule.StatusConfirmed, entry.Status)

	_, ok = ix.Get("ghost")
	assert.False(t, ok)
}
