package domain

import "errors"

var (
	MessageItemNotFound    = "Item not found"
	MessageItemNotModified = "Item not found or no changes made"
	MessageItemDeleted     = "Item deleted"
	MessageFailedItemBody  = "failed to validate item"

	ErrItemNotFound      = errors.New("item not found")
	ErrItemNotModified   = errors.New("item not found or no changes made")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidInsertDate = errors.New("invalid insert date")
)

type (
	ItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		ItemName   string `json:"item_name" validate:"required"`
		Quantity   int    `json:"quantity"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
		InsertDate string `json:"insert_date" validate:"omitempty"`
	}

	ItemUpdateRequest struct {
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		ItemName   string `json:"item_name" validate:"required"`
		Quantity   int    `json:"quantity"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
	}

	// ItemFilterQuery carries the raw query parameters of GET /items/filter.
	// Empty fields contribute no predicate.
	ItemFilterQuery struct {
		Email      string
		ExpiryDate string
		InsertDate string
		Quantity   string
	}

	ItemResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		ItemName   string `json:"item_name"`
		Quantity   int    `json:"quantity"`
		ExpiryDate string `json:"expiry_date"`
		InsertDate string `json:"insert_date"`
	}

	CreateItemResponse struct {
		ID string `json:"id"`
	}

	ItemEmailCountResponse struct {
		Email string `json:"_id"`
		Count int    `json:"count"`
	}
)
