package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	otelMocks "lodge/infras/otel/mocks"
	hotelMocks "lodge/internal/domains/hotel/mocks"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

func actorContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func newHotelFixture(t *testing.T) (service.Hotel, *hotelMocks.MockHotel) {
	t.Helper()

	ctrl := gomock.NewController(t)
	hotelRepo := hotelMocks.NewMockHotel(ctrl)

	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(hotelRepo, &config.Config{}, cacheMock, otelMocks.NewOtel())

	return svc, hotelRepo
}

func TestHotelService_Get(t *testing.T) {
	t.Run("configured hotel is returned", func(t *testing.T) {
		svc, hotelRepo := newHotelFixture(t)

		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{
			ID:          "hotel-1",
			Name:        "Seaside Lodge",
			Address:     "1 Shore Road",
			Email:       "front-desk@seaside.example.com",
			CheckInTime: "14:00",
		}, nil)

		res, err := svc.Get(actorContext(""))
		require.NoError(t, err)
		assert.Equal(t, "Seaside Lodge", res.Name)
		assert.Equal(t, "14:00", res.CheckInTime)
		assert.NotNil(t, res.Policies)
		assert.NotNil(t, res.Amenities)
	})

	t.Run("missing hotel yields not found", func(t *testing.T) {
		svc, hotelRepo := newHotelFixture(t)

		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := svc.Get(actorContext(""))
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_Save(t *testing.T) {
	req := dto.SaveHotelRequest{
		Name:    "Seaside Lodge",
		Address: "1 Shore Road",
		Email:   "front-desk@seaside.example.com",
	}

	t.Run("first save inserts the record", func(t *testing.T) {
		svc, hotelRepo := newHotelFixture(t)

		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
		hotelRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Save(actorContext("admin-1"), req)
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Seaside Lodge", res.Name)
	})

	t.Run("subsequent save updates the existing record", func(t *testing.T) {
		svc, hotelRepo := newHotelFixture(t)

		current := model.Hotel{ID: "hotel-1", Name: "Seaside Lodge"}
		updated := current
		updated.Name = "Seaside Lodge & Spa"

		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		hotelRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		renamed := req
		renamed.Name = "Seaside Lodge & Spa"

		res, err := svc.Save(actorContext("admin-1"), renamed)
		require.NoError(t, err)
		assert.Equal(t, "hotel-1", res.ID)
		assert.Equal(t, "Seaside Lodge & Spa", res.Name)
	})

	t.Run("update failure is propagated", func(t *testing.T) {
		svc, hotelRepo := newHotelFixture(t)

		hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1"}, nil)
		hotelRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Save(actorContext("admin-1"), req)
		assert.Error(t, err)
	})
}
