package response

import (
	"errors"
	"net/http"

	"webhook-resender/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope. Error holds a string, a
// slice of messages or a field map, depending on the error kind — callers
// branch on Code without parsing prose.
type ErrorResponse struct {
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
	Error      any    `json:"error"`
}

// OK sends a 200 response with the body as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := ErrorResponse{
			Code:       appErr.Code,
			StatusCode: appErr.HTTPStatus,
			Error:      appErr.Message,
		}
		if appErr.Details != nil {
			body.Error = appErr.Details
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:       "INTERNAL_ERROR",
		StatusCode: http.StatusInternalServerError,
		Error:      "Erro interno do servidor",
	})
}
