package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/schedule"
	"lodge/internal/domains/booking/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// roomRepoHolder wraps the room repository mock with small expectation
// helpers so each case reads as intent rather than gomock plumbing.
type roomRepoHolder struct {
	mock *roomMocks.MockRoom
}

func newRoomRepoHolder(ctrl *gomock.Controller) *roomRepoHolder {
	return &roomRepoHolder{mock: roomMocks.NewMockRoom(ctrl)}
}

func (h *roomRepoHolder) expectGet(room roomModel.Room) {
	h.mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
}

func (h *roomRepoHolder) expectGetTimes(room roomModel.Room, times int) {
	h.mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil).Times(times)
}

func (h *roomRepoHolder) expectGetAny(room roomModel.Room) {
	h.mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil).AnyTimes()
}

func newFixture(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomRepoHolder) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	roomRepo := newRoomRepoHolder(ctrl)
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	kafkaMock := kafkaMocks.NewMockClient(ctrl)
	otelMock := mocks.NewOtel()

	// Cache and event publishing run off the request path; keep them lenient.
	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	kafkaMock.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(bookingRepo, roomRepo.mock, cfg, cacheMock, kafkaMock, otelMock)

	return svc, bookingRepo, roomRepo
}

func availableRoom(id string, pricePerNight float64) roomModel.Room {
	return roomModel.Room{
		ID:            id,
		Title:         "Deluxe Suite",
		PricePerNight: pricePerNight,
		MaxGuests:     2,
		Status:        roomModel.StatusAvailable,
	}
}

func expectNoActiveBookings(repo *bookingMocks.MockBooking) {
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{}, nil).
		AnyTimes()
}

func createReq(roomID, checkIn, checkOut string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:     roomID,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
		GuestPhone: "+15550100",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful booking prices the stay by nights", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		expectNoActiveBookings(bookingRepo)
		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		require.NoError(t, err)

		assert.Equal(t, float64(400), res.TotalPrice)
		assert.Equal(t, schedule.StatusPending, res.Status)
		assert.NotEmpty(t, res.BookingID)
		assert.Equal(t, "room-1", res.RoomID)
	})

	t.Run("guest email is stored lowercased", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		expectNoActiveBookings(bookingRepo)
		bookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "jane@example.com", booking.GuestEmail)

				return nil
			})

		req := createReq("room-1", "2026-06-01", "2026-06-05")
		req.GuestEmail = "Jane@Example.COM"

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", res.GuestEmail)
	})

	t.Run("overlapping dates are rejected with a conflict", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ID:       "existing",
					RoomID:   "room-1",
					CheckIn:  date(2026, 6, 1),
					CheckOut: date(2026, 6, 5),
					Status:   schedule.StatusConfirmed,
				},
			}, nil).
			AnyTimes()

		_, err := svc.Create(context.Background(), createReq("room-1", "2026-06-04", "2026-06-08"))
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("checkout day back to back with an existing stay is admitted", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ID:       "existing",
					RoomID:   "room-1",
					CheckIn:  date(2026, 6, 1),
					CheckOut: date(2026, 6, 5),
					Status:   schedule.StatusConfirmed,
				},
			}, nil).
			AnyTimes()
		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(context.Background(), createReq("room-1", "2026-06-05", "2026-06-08"))
		assert.NoError(t, err)
	})

	t.Run("index reservation is rolled back when persistence fails", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGetTimes(availableRoom("room-1", 100), 2)
		expectNoActiveBookings(bookingRepo)

		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		require.Error(t, err)

		// The failed attempt must not hold the dates hostage.
		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err = svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		assert.NoError(t, err)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.Create(context.Background(), createReq("room-1", "06/01/2026", "2026-06-05"))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("zero-night stay is rejected", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.Create(context.Background(), createReq("room-1", "2026-06-05", "2026-06-05"))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room yields not found", func(t *testing.T) {
		svc, _, roomRepo := newFixture(t)

		roomRepo.expectGet(roomModel.Room{})

		_, err := svc.Create(context.Background(), createReq("missing", "2026-06-01", "2026-06-05"))
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unavailable room yields conflict", func(t *testing.T) {
		svc, _, roomRepo := newFixture(t)

		room := availableRoom("room-1", 100)
		room.Status = roomModel.StatusUnavailable
		roomRepo.expectGet(room)

		_, err := svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	pendingBooking := model.Booking{
		ID:       "booking-1",
		Code:     "BK-ABCD1234",
		RoomID:   "room-1",
		CheckIn:  date(2026, 6, 1),
		CheckOut: date(2026, 6, 5),
		Status:   schedule.StatusPending,
	}

	t.Run("pending booking can be confirmed", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGetAny(availableRoom("room-1", 100))
		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil).Times(2)
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking}, nil).
			AnyTimes()
		bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusConfirmed}, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, schedule.StatusConfirmed, res.Status)
	})

	t.Run("cancelling frees the dates for a new booking", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGetAny(availableRoom("room-1", 100))
		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil).Times(2)
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking}, nil).
			AnyTimes()
		bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusCancelled}, "booking-1")
		require.NoError(t, err)

		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err = svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		assert.NoError(t, err)
	})

	t.Run("cancelled booking cannot be revived", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		cancelled := pendingBooking
		cancelled.Status = schedule.StatusCancelled

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil).Times(2)
		expectNoActiveBookings(bookingRepo)

		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusConfirmed}, "booking-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("confirmed booking cannot go back to pending", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		confirmed := pendingBooking
		confirmed.Status = schedule.StatusConfirmed

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil).Times(2)
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{confirmed}, nil).
			AnyTimes()

		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusPending}, "booking-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stale status read cannot revive a concurrent cancellation", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGetAny(availableRoom("room-1", 100))

		cancelled := pendingBooking
		cancelled.Status = schedule.StatusCancelled

		// The confirm request read pending before the lock; by the time it
		// holds the room, a cancel has committed. The re-read under the lock
		// must see cancelled and reject the transition.
		gomock.InOrder(
			bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil),
			bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil),
		)
		expectNoActiveBookings(bookingRepo)

		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusConfirmed}, "booking-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		// The cancelled dates must stay open for a fresh booking.
		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err = svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		assert.NoError(t, err)
	})

	t.Run("confirming fails hard when the schedule has no entry", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking, nil).Times(2)
		expectNoActiveBookings(bookingRepo)

		// No Update expectation: the store must not be touched when the room
		// schedule has lost track of the booking.
		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusConfirmed}, "booking-1")
		assert.Error(t, err)
	})

	t.Run("unknown booking yields not found", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.UpdateStatus(context.Background(),
			dto.UpdateBookingStatusRequest{Status: schedule.StatusConfirmed}, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	booking := model.Booking{
		ID:       "booking-1",
		Code:     "BK-ABCD1234",
		RoomID:   "room-1",
		CheckIn:  date(2026, 6, 1),
		CheckOut: date(2026, 6, 5),
		Status:   schedule.StatusConfirmed,
	}

	t.Run("delete removes booking and frees the dates", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGetAny(availableRoom("room-1", 100))
		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil).Times(2)
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{booking}, nil).
			AnyTimes()
		bookingRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "booking-1")
		require.NoError(t, err)

		bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err = svc.Create(context.Background(), createReq("room-1", "2026-06-01", "2026-06-05"))
		assert.NoError(t, err)
	})

	t.Run("unknown booking yields not found", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Lookup(t *testing.T) {
	t.Run("matching code and email returns the booking", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		booking := model.Booking{
			ID:         "booking-1",
			Code:       "BK-ABCD1234",
			RoomID:     "room-1",
			GuestEmail: "jane@example.com",
			CheckIn:    date(2026, 6, 1),
			CheckOut:   date(2026, 6, 5),
			Status:     schedule.StatusConfirmed,
		}

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		roomRepo.expectGetAny(availableRoom("room-1", 100))

		res, err := svc.Lookup(context.Background(), "jane@example.com", "BK-ABCD1234")
		require.NoError(t, err)
		assert.Equal(t, "BK-ABCD1234", res.BookingID)
		require.NotNil(t, res.Room)
		assert.Equal(t, "Deluxe Suite", res.Room.Title)
	})

	t.Run("no match yields not found", func(t *testing.T) {
		svc, bookingRepo, _ := newFixture(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Lookup(context.Background(), "jane@example.com", "BK-WRONG")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("email comparison ignores case", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		booking := model.Booking{
			ID:         "booking-1",
			Code:       "BK-ABCD1234",
			RoomID:     "room-1",
			GuestEmail: "jane@example.com",
			CheckIn:    date(2026, 6, 1),
			CheckOut:   date(2026, 6, 5),
			Status:     schedule.StatusConfirmed,
		}

		roomRepo.expectGetAny(availableRoom("room-1", 100))
		bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
				for _, raw := range filter.Filters {
					if f, ok := raw.(gDto.Filter); ok && f.Field == model.FieldGuestEmail {
						assert.Equal(t, "jane@example.com", f.Value)
					}
				}

				return booking, nil
			})

		res, err := svc.Lookup(context.Background(), "Jane@Example.COM", "BK-ABCD1234")
		require.NoError(t, err)
		assert.Equal(t, "BK-ABCD1234", res.BookingID)
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	t.Run("free range is available", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		expectNoActiveBookings(bookingRepo)

		res, err := svc.CheckAvailability(context.Background(), "room-1", "2026-06-01", "2026-06-05")
		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("booked range is unavailable", func(t *testing.T) {
		svc, bookingRepo, roomRepo := newFixture(t)

		roomRepo.expectGet(availableRoom("room-1", 100))
		bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ID:       "existing",
					RoomID:   "room-1",
					CheckIn:  date(2026, 6, 1),
					CheckOut: date(2026, 6, 5),
					Status:   schedule.StatusPending,
				},
			}, nil).
			AnyTimes()

		res, err := svc.CheckAvailability(context.Background(), "room-1", "2026-06-04", "2026-06-08")
		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("unavailable room short-circuits without touching the schedule", func(t *testing.T) {
		svc, _, roomRepo := newFixture(t)

		room := availableRoom("room-1", 100)
		room.Status = roomModel.StatusUnavailable
		roomRepo.expectGet(room)

		res, err := svc.CheckAvailability(context.Background(), "room-1", "2026-06-01", "2026-06-05")
		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.CheckAvailability(context.Background(), "room-1", "2026-06-05", "2026-06-01")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestNewBookingCode_Format(t *testing.T) {
	code := dto.NewBookingCode()

	assert.Len(t, code, 11)
	assert.Equal(t, "BK-", code[:3])
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, dto.NewBookingCode())
}
