package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	domainerrors "medseal.backend/internal/domain/errors"
)

func TestConstructorsCarrySentinels(t *testing.T) {
	cases := []struct {
		appErr   *domainerrors.AppError
		status   int
		code     string
		sentinel error
	}{
		{domainerrors.NotFound("x"), http.StatusNotFound, domainerrors.CodeNotFound, domainerrors.ErrNotFound},
		{domainerrors.Conflict("x"), http.StatusConflict, domainerrors.CodeConflict, domainerrors.ErrAlreadyExists},
		{domainerrors.BadRequest("x"), http.StatusBadRequest, domainerrors.CodeBadRequest, domainerrors.ErrInvalidInput},
		{domainerrors.Unauthenticated("x"), http.StatusUnauthorized, domainerrors.CodeUnauthenticated, domainerrors.ErrUnauthenticated},
		{domainerrors.Forbidden("x"), http.StatusForbidden, domainerrors.CodeForbidden, domainerrors.ErrForbidden},
		{domainerrors.NotVerified("x"), http.StatusForbidden, domainerrors.CodeNotVerified, domainerrors.ErrNotVerified},
		{domainerrors.InvalidState("x"), http.StatusUnprocessableEntity, domainerrors.CodeInvalidState, domainerrors.ErrInvalidState},
		{domainerrors.Expired("x"), http.StatusGone, domainerrors.CodeExpired, domainerrors.ErrExpired},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.appErr.Status)
			assert.Equal(t, tc.code, tc.appErr.Code)
			assert.Equal(t, "x", tc.appErr.Error())
			assert.ErrorIs(t, tc.appErr, tc.sentinel)
		})
	}
}

func TestInternalErrorWrapsCause(t *testing.T) {
	cause := errors.New("db gone")
	appErr := domainerrors.InternalError(fmt.Errorf("query failed: %w", cause))

	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, domainerrors.CodeInternalError, appErr.Code)
	assert.Equal(t, "internal server error", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestErrorsAsRecoversAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", domainerrors.Forbidden("no access"))

	var appErr *domainerrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "no access", appErr.Message)
}
