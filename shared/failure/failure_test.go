package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"lodge/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("who are you"),
			code:    http.StatusUnauthorized,
			message: "who are you",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not yours"),
			code:    http.StatusForbidden,
			message: "not yours",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("room not found"),
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("dates taken"),
			code:    http.StatusConflict,
			message: "dates taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code to be 500, got %d", got)
	}
}

func TestValidation_CarriesFieldErrors(t *testing.T) {
	fieldErrors := map[string][]string{
		"checkIn": {"checkIn is required"},
	}

	err := failure.Validation("validation failed", fieldErrors)

	if got := failure.GetCode(err); got != http.StatusBadRequest {
		t.Errorf("expected code to be 400, got %d", got)
	}

	got := failure.GetErrors(err)
	if len(got["checkIn"]) != 1 || got["checkIn"][0] != "checkIn is required" {
		t.Errorf("expected field errors to round-trip, got %v", got)
	}
}

func TestGetErrors_NonFailure(t *testing.T) {
	if got := failure.GetErrors(errors.New("plain error")); got != nil {
		t.Errorf("expected nil field errors, got %v", got)
	}
}
