package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("items must not be empty"), http.StatusBadRequest},
		{"auth", Auth("invalid login"), http.StatusUnauthorized},
		{"not found", NotFound("customer %d not found", 3), http.StatusNotFound},
		{"insufficient stock", InsufficientStock(7, 1, 2), http.StatusConflict},
		{"store", Store("failed to insert detail", errors.New("broken pipe")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.StatusCode(); got != tc.want {
				t.Errorf("StatusCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorsAsAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	var wrapped error = Store("failed to commit", cause)

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As failed to recover *Error")
	}
	if appErr.Kind != KindStore {
		t.Errorf("Kind = %q, want %q", appErr.Kind, KindStore)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is failed to find wrapped cause")
	}
}

func TestInsufficientStockMessageNamesProduct(t *testing.T) {
	err := InsufficientStock(7, 1, 2)
	want := "insufficient stock for product 7: have 1, requested 2"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}
