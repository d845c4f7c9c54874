package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	userMocks "lodge/internal/domains/user/mocks"
	"lodge/internal/domains/user/model"
	"lodge/internal/domains/user/model/dto"
	"lodge/internal/domains/user/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

func newUserFixture(t *testing.T) (service.User, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := userMocks.NewMockUser(ctrl)
	otelMock := mocks.NewOtel()

	svc := service.New(userRepo, &config.Config{}, otelMock)

	return svc, userRepo
}

func actorContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestUserService_CreateAdmin(t *testing.T) {
	t.Run("new admin is created with hashed password", func(t *testing.T) {
		svc, userRepo := newUserFixture(t)

		userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		userRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.NotEqual(t, "secret-password", user.Password)
				assert.Equal(t, constant.RoleAdmin, user.Role)
				assert.Equal(t, model.StatusActive, user.Status)

				return nil
			})

		res, err := svc.CreateAdmin(actorContext("super-1"), dto.CreateAdminRequest{
			Name:     "New Admin",
			Email:    "admin@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", res.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, userRepo := newUserFixture(t)

		userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.CreateAdmin(actorContext("super-1"), dto.CreateAdminRequest{
			Name:     "New Admin",
			Email:    "taken@example.com",
			Password: "secret-password",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_UpdateStatus(t *testing.T) {
	t.Run("suspending another admin succeeds", func(t *testing.T) {
		svc, userRepo := newUserFixture(t)

		userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.UpdateStatus(actorContext("super-1"),
			dto.UpdateAdminStatusRequest{Status: model.StatusSuspended}, "admin-2")
		assert.NoError(t, err)
	})

	t.Run("changing your own status is rejected", func(t *testing.T) {
		svc, _ := newUserFixture(t)

		err := svc.UpdateStatus(actorContext("super-1"),
			dto.UpdateAdminStatusRequest{Status: model.StatusSuspended}, "super-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown admin yields not found", func(t *testing.T) {
		svc, userRepo := newUserFixture(t)

		userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateStatus(actorContext("super-1"),
			dto.UpdateAdminStatusRequest{Status: model.StatusSuspended}, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deleting another admin succeeds", func(t *testing.T) {
		svc, userRepo := newUserFixture(t)

		userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		userRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(actorContext("super-1"), "admin-2")
		assert.NoError(t, err)
	})

	t.Run("deleting your own account is rejected", func(t *testing.T) {
		svc, _ := newUserFixture(t)

		err := svc.Delete(actorContext("super-1"), "super-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
