package handlers

import (
	"Recipeat/domain"
	"errors"
	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrScreenNotFound),
		errors.Is(err, domain.ErrCollectionNotFound),
		errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidParam),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrViewportOutOfRange),
		errors.Is(err, domain.ErrViewportNotAscending),
		errors.Is(err, domain.ErrViewportMismatch):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
