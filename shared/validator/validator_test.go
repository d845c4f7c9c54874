package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"lodge/shared/failure"
	"lodge/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createBookingBody struct {
	GuestName  string `json:"guestName"  validate:"required,max=200"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	CheckIn    string `json:"checkIn"    validate:"required"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := strings.NewReader(`{"guestName":"Jane Doe","guestEmail":"jane@example.com","checkIn":"2026-06-01"}`)

	data := createBookingBody{}
	require.NoError(t, validator.Validate(body, &data))
	assert.Equal(t, "Jane Doe", data.GuestName)
}

func TestValidate_InvalidJSON(t *testing.T) {
	body := strings.NewReader(`{"guestName":`)

	data := createBookingBody{}
	err := validator.Validate(body, &data)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	body := strings.NewReader(`{"guestName":"Jane Doe","guestEmail":"not-an-email"}`)

	data := createBookingBody{}
	err := validator.Validate(body, &data)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fieldErrors := failure.GetErrors(err)
	assert.Contains(t, fieldErrors, "guestEmail")
	assert.Contains(t, fieldErrors, "checkIn")
	assert.NotContains(t, fieldErrors, "GuestEmail")
}
