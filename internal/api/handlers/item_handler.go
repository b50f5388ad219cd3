package handlers

import (
	"errors"

	"Inventory-Tracker-API/domain"
	"Inventory-Tracker-API/internal/api/presenters"
	"Inventory-Tracker-API/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		CreateItem(c *fiber.Ctx) error
		FilterItems(c *fiber.Ctx) error
		GetItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		CountItemsByEmail(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) CreateItem(c *fiber.Ctx) error {
	req := new(domain.ItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedItemBody, err)
	}

	res, err := h.itemService.CreateItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExpiryDate) || errors.Is(err, domain.ErrInvalidInsertDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedItemBody, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *itemHandler) FilterItems(c *fiber.Ctx) error {
	query := domain.ItemFilterQuery{
		Email:      c.Query("email"),
		ExpiryDate: c.Query("expiry_date"),
		InsertDate: c.Query("insert_date"),
		Quantity:   c.Query("quantity"),
	}

	items, err := h.itemService.FilterItems(c.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilterParam) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *itemHandler) GetItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.itemService.GetItemByID(c.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.ItemUpdateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedItemBody, err)
	}

	res, err := h.itemService.UpdateItem(c.Context(), itemID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrInvalidExpiryDate):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedItemBody, err)
		case errors.Is(err, domain.ErrItemNotModified), errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotModified, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.itemService.DeleteItem(c.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, nil)
		case errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"detail": domain.MessageItemDeleted}, fiber.StatusOK)
}

func (h *itemHandler) CountItemsByEmail(c *fiber.Ctx) error {
	counts, err := h.itemService.CountItemsByEmail(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, counts, fiber.StatusOK)
}
