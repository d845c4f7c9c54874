package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	bookingHandler "lodge/internal/handlers/booking"
	gDto "lodge/shared/dto"
)

// bookingServiceStub records what the handler asked for; unimplemented
// methods fall through to the embedded nil interface and panic if hit.
type bookingServiceStub struct {
	service.Booking

	gotParams gDto.QueryParams
	gotFilter gDto.FilterGroup
	deletedID string
}

func (s *bookingServiceStub) GetAll(_ context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
	s.gotParams = req
	s.gotFilter = filter

	return dto.GetBookingsResponse{Data: []dto.BookingResponse{}}, nil
}

func (s *bookingServiceStub) Delete(_ context.Context, id string) error {
	s.deletedID = id

	return nil
}

func newBookingRouter(stub *bookingServiceStub) http.Handler {
	handler := bookingHandler.New(stub, mocks.NewOtel())

	mux := chi.NewRouter()
	mux.Route("/v1", handler.Router)

	return mux
}

func TestGetBookings_QueryFilters(t *testing.T) {
	stub := &bookingServiceStub{}
	mux := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/bookings/?room=room-1&status=pending&startDate=2026-06-01&endDate=2026-06-30&page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	filters := map[string]gDto.Filter{}

	for _, raw := range stub.gotFilter.Filters {
		f, ok := raw.(gDto.Filter)
		require.True(t, ok)

		filters[f.Field] = f
	}

	require.Len(t, filters, 4)

	assert.Equal(t, "room-1", filters[model.FieldRoomID].Value)
	assert.Equal(t, gDto.FilterOperatorEq, filters[model.FieldRoomID].Operator)

	assert.Equal(t, "pending", filters[model.FieldStatus].Value)
	assert.Equal(t, gDto.FilterOperatorEq, filters[model.FieldStatus].Operator)

	assert.Equal(t, "2026-06-01", filters[model.FieldCheckIn].Value)
	assert.Equal(t, gDto.FilterOperatorGreaterEq, filters[model.FieldCheckIn].Operator)

	assert.Equal(t, "2026-06-30", filters[model.FieldCheckOut].Value)
	assert.Equal(t, gDto.FilterOperatorLessEq, filters[model.FieldCheckOut].Operator)
}

func TestGetBookings_NoFilters(t *testing.T) {
	stub := &bookingServiceStub{}
	mux := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, stub.gotFilter.Filters)
}

func TestDeleteBooking_RespondsNoContent(t *testing.T) {
	stub := &bookingServiceStub{}
	mux := newBookingRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/bookings/booking-1", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "booking-1", stub.deletedID)
}
