package http

import (
	"errors"

	"laura-assistant/internal/search"
	pkgErrors "laura-assistant/pkg/errors"
)

var errEmptyUserInput = pkgErrors.NewHTTPError(400, "user_input must not be empty")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(400, "user_input must not be empty")
	case errors.Is(err, search.ErrNoResults):
		return pkgErrors.NewHTTPError(400, "results must not be empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
