package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/axiom-guard/boundary/pkg/models"
)

// mapError maps pipeline/storage-layer errors to HTTP error responses.
func mapError(err error) *echo.HTTPError {
	if errors.Is(err, models.ErrInvocationContract) {
		return echo.NewHTTPError(http.StatusBadRequest, "invocation contract violated: post_action requires non-empty input and a user-initiated trigger source")
	}
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, models.ErrConcurrentModify) {
		return echo.NewHTTPError(http.StatusConflict, "concurrent modification detected")
	}

	slog.Error("unexpected pipeline error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
