package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedQueryRequest   = "failed to process query parameters"
	MessageFailedProcessRequest = "failed to process request"
	MessageInvalidID            = "Invalid ID"

	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidFilterParam = errors.New("invalid filter parameter")
)
