package schedule_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"lodge/internal/domains/booking/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_LoadsEntriesOncePerRoom(t *testing.T) {
	var loads int32

	board := schedule.NewBoard(func(_ context.Context, roomID string) ([]schedule.Entry, error) {
		atomic.AddInt32(&loads, 1)

		return []schedule.Entry{
			{Start: date(2026, 6, 1), End: date(2026, 6, 5), BookingID: "persisted", Status: schedule.StatusConfirmed},
		}, nil
	})

	ctx := context.Background()

	overlaps, err := board.QueryOverlap(ctx, "room-1", date(2026, 6, 4), date(2026, 6, 8))
	require.NoError(t, err)
	assert.True(t, overlaps)

	overlaps, err = board.QueryOverlap(ctx, "room-1", date(2026, 6, 5), date(2026, 6, 8))
	require.NoError(t, err)
	assert.False(t, overlaps)

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestBoard_LoaderErrorPropagates(t *testing.T) {
	wantErr := errors.New("storage down")

	board := schedule.NewBoard(func(_ context.Context, _ string) ([]schedule.Entry, error) {
		return nil, wantErr
	})

	_, err := board.QueryOverlap(context.Background(), "room-1", date(2026, 6, 1), date(2026, 6, 2))
	assert.ErrorIs(t, err, wantErr)
}

func TestBoard_WithRoom_SerializesAdmissions(t *testing.T) {
	board := schedule.NewBoard(func(_ context.Context, _ string) ([]schedule.Entry, error) {
		return nil, nil
	})

	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		admitted int32
		rejected int32
	)

	// Two concurrent requests for the same dates of the same room: exactly
	// one wins.
	for _, id := range []string{"booking-a", "booking-b"} {
		wg.Add(1)

		go func(bookingID string) {
			defer wg.Done()

			err := board.WithRoom(ctx, "room-1", func(ix *schedule.Index) error {
				return ix.Insert(date(2026, 6, 1), date(2026, 6, 5), bookingID, schedule.StatusPending)
			})

			if err != nil {
				atomic.AddInt32(&rejected, 1)
			} else {
				atomic.AddInt32(&admitted, 1)
			}
		}(id)
	}

	wg.Wait()

	assert.Equal(t, int32(1), admitted)
	assert.Equal(t, int32(1), rejected)
}

func TestBoard_RoomsDoNotContend(t *testing.T) {
	board := schedule.NewBoard(func(_ context.Context, _ string) ([]schedule.Entry, error) {
		return nil, nil
	})

	ctx := context.Background()

	require.NoError(t, board.WithRoom(ctx, "room-1", func(ix *schedule.Index) error {
		return ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-a", schedule.StatusConfirmed)
	}))

	// The same dates in another room are admitted.
	assert.NoError(t, board.WithRoom(ctx, "room-2", func(ix *schedule.Index) error {
		return ix.Insert(date(2026, 6, 1), date(2026, 6, 5), "booking-b", schedule.StatusConfirmed)
	}))
}

func TestBoard_ForgetRebuildsFromLoader(t *testing.T) {
	var loads int32

	board := schedule.NewBoard(func(_ context.Context, _ string) ([]schedule.Entry, error) {
		atomic.AddInt32(&loads, 1)

		return nil, nil
	})

	ctx := context.Background()

	_, err := board.QueryOverlap(ctx, "room-1", date(2026, 6, 1), date(2026, 6, 2))
	require.NoError(t, err)

	board.Forget("room-1")

	_, err = board.QueryOverlap(ctx, "room-1", date(2026, 6, 1), date(2026, 6, 2))
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
}
