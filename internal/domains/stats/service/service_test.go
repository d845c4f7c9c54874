package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/schedule"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/internal/domains/stats/service"
	cacheMocks "lodge/shared/cache/mocks"
	gModel "lodge/shared/model"
)

func newStatsFixture(t *testing.T) (service.Stats, *bookingMocks.MockBooking, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	otelMock := mocks.NewOtel()

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(bookingRepo, roomRepo, &config.Config{}, cacheMock, otelMock)

	return svc, bookingRepo, roomRepo
}

func bookingAt(id, status string, totalPrice float64, createdAt time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         id,
		Code:       "BK-" + id,
		RoomID:     "room-1",
		TotalPrice: totalPrice,
		Status:     status,
		Metadata:   gModel.Metadata{CreatedAt: createdAt},
	}
}

func TestStatsService_Dashboard(t *testing.T) {
	t.Run("empty data set yields all zero figures", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newStatsFixture(t)

		bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil)
		roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{}, nil)

		res, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		assert.Zero(t, res.TotalRooms)
		assert.Zero(t, res.TotalBookings)
		assert.Zero(t, res.TotalRevenue)
		assert.Empty(t, res.MonthlyRevenue)
		assert.Empty(t, res.RecentBookings)
	})

	t.Run("revenue counts pending and confirmed but not cancelled", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newStatsFixture(t)

		june := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
		july := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)

		bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			bookingAt("1", schedule.StatusConfirmed, 400, june),
			bookingAt("2", schedule.StatusPending, 150, june),
			bookingAt("3", schedule.StatusCancelled, 999, june),
			bookingAt("4", schedule.StatusConfirmed, 200, july),
		}, nil)
		roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{
			{ID: "room-1", Status: roomModel.StatusAvailable},
			{ID: "room-2", Status: roomModel.StatusAvailable},
			{ID: "room-3", Status: roomModel.StatusUnavailable},
		}, nil)

		res, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, res.TotalRooms)
		assert.Equal(t, 2, res.AvailableRooms)
		assert.Equal(t, 1, res.UnavailableRooms)

		assert.Equal(t, 4, res.TotalBookings)
		assert.Equal(t, 1, res.PendingBookings)
		assert.Equal(t, 2, res.ConfirmedBookings)
		assert.Equal(t, 1, res.CancelledBookings)

		assert.Equal(t, float64(750), res.TotalRevenue)

		require.Len(t, res.MonthlyRevenue, 2)
		assert.Equal(t, "2026-06", res.MonthlyRevenue[0].Month)
		assert.Equal(t, float64(550), res.MonthlyRevenue[0].Revenue)
		assert.Equal(t, "2026-07", res.MonthlyRevenue[1].Month)
		assert.Equal(t, float64(200), res.MonthlyRevenue[1].Revenue)
	})

	t.Run("recent bookings are the five newest", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newStatsFixture(t)

		base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		bookings := make([]bookingModel.Booking, 0, 7)

		for i := 0; i < 7; i++ {
			bookings = append(bookings,
				bookingAt(string(rune('a'+i)), schedule.StatusConfirmed, 100, base.Add(time.Duration(i)*time.Hour)))
		}

		bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{}, nil)

		res, err := svc.Dashboard(context.Background())
		require.NoError(t, err)

		require.Len(t, res.RecentBookings, 5)
		assert.Equal(t, "g", res.RecentBookings[0].ID)
		assert.Equal(t, "c", res.RecentBookings[4].ID)
	})

	t.Run("booking query failure is surfaced", func(t *testing.T) {
		svc, bookingRepo, _ := newStatsFixture(t)

		bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Dashboard(context.Background())
		assert.Error(t, err)
	})
}
