package handlers

import (
	"Recipeat/domain"
	"Recipeat/internal/api/presenters"
	"Recipeat/pkg/screen"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScreenHandler interface {
		OpenScreen(c *fiber.Ctx) error
		GetScreen(c *fiber.Ctx) error
		UpdateViewport(c *fiber.Ctx) error
		AddToCollection(c *fiber.Ctx) error
		CloseScreen(c *fiber.Ctx) error
	}

	screenHandler struct {
		screenService screen.ScreenService
		validator     *validator.Validate
	}
)

func NewScreenHandler(screenService screen.ScreenService, validator *validator.Validate) ScreenHandler {
	return &screenHandler{
		screenService: screenService,
		validator:     validator,
	}
}

func (h *screenHandler) OpenScreen(c *fiber.Ctx) error {
	res, err := h.screenService.Open(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedOpenScreen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessOpenScreen)
}

func (h *screenHandler) GetScreen(c *fiber.Ctx) error {
	res, err := h.screenService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetScreen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScreen)
}

func (h *screenHandler) UpdateViewport(c *fiber.Ctx) error {
	req := new(domain.ViewportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScroll, err)
	}

	res, err := h.screenService.Scroll(c.Context(), c.Params("id"), c.Params("name"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedScroll, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScroll)
}

// AddToCollection accepts the add trigger without creating anything.
func (h *screenHandler) AddToCollection(c *fiber.Ctx) error {
	if err := h.screenService.Add(c.Context(), c.Params("id"), c.Params("name")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageAddNotAvailable)
}

func (h *screenHandler) CloseScreen(c *fiber.Ctx) error {
	if err := h.screenService.Close(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCloseScreen, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCloseScreen)
}
