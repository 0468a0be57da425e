package handlers

import (
	"errors"
	"fmt"
	"little_lemon/internal/services"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&services.ValidationError{Field: "quantity", Message: "too small"}, http.StatusBadRequest},
		{services.ErrEmptyCart, http.StatusBadRequest},
		{services.ErrInvalidAssignment, http.StatusBadRequest},
		{services.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("field %q: %w", "user", services.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("order %w", services.ErrNotFound), http.StatusNotFound},
		{services.ErrUnavailable, http.StatusNotFound},
		{services.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
