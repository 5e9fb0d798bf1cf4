// Package httpx holds the HTTP edge shared by all handlers, mainly the
// central error handler translating the apperr taxonomy into responses.
package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/middleware"
)

// ErrorHandler returns an echo.HTTPErrorHandler that renders apperr errors
// as plain-text responses with their mapped status. Internal errors are
// logged with their cause and surface only a generic message. echo's own
// HTTP errors, such as 404 for unknown routes, pass through unchanged.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		switch e := err.(type) {
		case *echo.HTTPError:
			status = e.Code
			if msg, ok := e.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		default:
			kind := apperr.KindOf(err)
			status = apperr.Status(kind)
			if kind == apperr.KindInternal {
				rid, _ := c.Get(middleware.RequestIDKey).(string)
				logger.Error().
					Err(err).
					Str("request_id", rid).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("unhandled error")
			} else {
				message = err.Error()
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.String(status, message)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("writing error response")
		}
	}
}
