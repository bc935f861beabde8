package api_middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/itacademy/dice-game-api/internal/apperrors"
)

// NewHTTPErrorHandler maps failures to the JSON error body of the API:
// {"message": ...} with the status code the error carries.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal Server Error"

		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			message = appErr.Message
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if err := c.JSON(code, echo.Map{"message": message}); err != nil {
			log.Error("error writing error response", zap.Error(err))
		}
	}
}
