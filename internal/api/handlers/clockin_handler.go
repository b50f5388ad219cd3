package handlers

import (
	"errors"

	"Inventory-Tracker-API/domain"
	"Inventory-Tracker-API/internal/api/presenters"
	"Inventory-Tracker-API/pkg/clockin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClockInHandler interface {
		CreateClockIn(c *fiber.Ctx) error
		FilterClockIns(c *fiber.Ctx) error
		GetClockIn(c *fiber.Ctx) error
		UpdateClockIn(c *fiber.Ctx) error
		DeleteClockIn(c *fiber.Ctx) error
	}

	clockInHandler struct {
		clockInService clockin.ClockInService
		validator      *validator.Validate
	}
)

func NewClockInHandler(clockInService clockin.ClockInService, validator *validator.Validate) ClockInHandler {
	return &clockInHandler{
		clockInService: clockInService,
		validator:      validator,
	}
}

func (h *clockInHandler) CreateClockIn(c *fiber.Ctx) error {
	req := new(domain.ClockInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClockInBody, err)
	}

	res, err := h.clockInService.CreateClockIn(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInsertDatetime) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClockInBody, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *clockInHandler) FilterClockIns(c *fiber.Ctx) error {
	query := domain.ClockInFilterQuery{
		Email:          c.Query("email"),
		Location:       c.Query("location"),
		InsertDatetime: c.Query("insert_datetime"),
	}

	clockIns, err := h.clockInService.FilterClockIns(c.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFilterParam):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
		case errors.Is(err, domain.ErrNoClockInRecords):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNoClockInRecords, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, clockIns, fiber.StatusOK)
}

func (h *clockInHandler) GetClockIn(c *fiber.Ctx) error {
	clockInID := c.Params("id")

	res, err := h.clockInService.GetClockInByID(c.Context(), clockInID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrClockInNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageClockInNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *clockInHandler) UpdateClockIn(c *fiber.Ctx) error {
	clockInID := c.Params("id")
	req := new(domain.ClockInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClockInBody, err)
	}

	res, err := h.clockInService.UpdateClockIn(c.Context(), clockInID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrInvalidInsertDatetime):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClockInBody, err)
		case errors.Is(err, domain.ErrClockInNotModified), errors.Is(err, domain.ErrClockInNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageClockInNotModified, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *clockInHandler) DeleteClockIn(c *fiber.Ctx) error {
	clockInID := c.Params("id")

	if err := h.clockInService.DeleteClockIn(c.Context(), clockInID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrClockInNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageClockInNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"detail": domain.MessageClockInDeleted}, fiber.StatusOK)
}
