package handlers

import (
	"errors"
	"testing"

	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"gorm.io/gorm"
)

func TestUserCreateErrorMapsDuplicateToValidation(t *testing.T) {
	err := userCreateError(gorm.ErrDuplicatedKey, "maria")

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("error = %v, want kind %q", err, apperrors.KindValidation)
	}
	if appErr.StatusCode() != 400 {
		t.Errorf("StatusCode() = %d, want 400", appErr.StatusCode())
	}
}

func TestUserCreateErrorWrapsOtherFailures(t *testing.T) {
	cause := errors.New("connection reset")
	err := userCreateError(cause, "maria")

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindStore {
		t.Fatalf("error = %v, want kind %q", err, apperrors.KindStore)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}
