package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "medseal.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors map to their own status and code;
// a few bare sentinels that escape the usecases are mapped here; everything
// else is a 500 with no detail leaked to the client.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidCredentials):
			appErr = domainerrors.NewAppError(http.StatusUnauthorized,
				domainerrors.CodeInvalidCredentials, "Invalid email or password", err)
		case errors.Is(err, domainerrors.ErrNotFound):
			appErr = domainerrors.NotFound("Resource not found")
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
