package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, errorDetail := classifyError(err)

	if status >= http.StatusInternalServerError {
		event := logger.Error().Err(err)
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Err != nil {
			event = event.AnErr("cause", customErr.Err)
		}
		event.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}
	withMessage := func(detail *dto.ErrorDetail) *dto.ErrorDetail {
		if message != "" {
			return detail.WithDetails(message)
		}
		return detail
	}

	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, withMessage(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidRole, apperrors.ErrInvalidStatus):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrClassNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Class not found")
	case apperrors.Is(err, apperrors.ErrUserAlreadyExists, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrExternalService):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Payment processor unavailable")
	default:
		// Only messages built with apperrors.NewInternalError reach the client here
		return http.StatusInternalServerError, withMessage(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical))
	}
}

// Recovery turns a panic in any handler into a 500 JSON response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	})
}

// NotFound answers unknown routes with the standard error envelope
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found").
			WithDetails(c.Request.Method + " " + c.Request.URL.Path)
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
	}
}
