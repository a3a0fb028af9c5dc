package http

import (
	"errors"

	"laura-assistant/internal/assistant"
	pkgErrors "laura-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	case errors.Is(err, assistant.ErrCompletionFailed):
		return pkgErrors.NewHTTPError(500, "the assistant is temporarily unavailable, please try again")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
