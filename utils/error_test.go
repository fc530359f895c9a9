package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []string{"name", "phone"}}
	assert.Equal(t, "Missing or invalid fields: name, phone", err.Error())

	err = &ValidationError{Message: "Invalid booking ID format", Fields: []string{"ignored"}}
	assert.Equal(t, "Invalid booking ID format", err.Error())
}

func TestNotFoundError_Message(t *testing.T) {
	assert.Equal(t, "Booking not found with ID: abc", (&NotFoundError{Resource: "Booking", ID: "abc"}).Error())
	assert.Equal(t, "Booking not found", (&NotFoundError{Resource: "Booking"}).Error())
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewValidationError("name"), http.StatusBadRequest},
		{&NotFoundError{Resource: "Booking", ID: "abc"}, http.StatusNotFound},
		{&ConfigurationError{Message: "cloudinary credentials not configured"}, http.StatusInternalServerError},
		{&PersistenceError{Op: "bookings.find", Err: errors.New("timeout")}, http.StatusInternalServerError},
		{&ExternalServiceError{Provider: "cloudinary", Err: errors.New("rejected")}, http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "statusFor(%v)", tc.err)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")
	assert.True(t, errors.Is(&PersistenceError{Op: "op", Err: inner}, inner))
	assert.True(t, errors.Is(&ExternalServiceError{Provider: "cloudinary", Err: inner}, inner))
}
