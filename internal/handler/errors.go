package handler

import (
	"github.com/labstack/echo/v4"

	"publicity/internal/errors"
)

// httpError converts a domain error into an echo error with the matching
// status code and response body.
func httpError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
