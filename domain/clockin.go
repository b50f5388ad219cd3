package domain

import "errors"

var (
	MessageClockInNotFound    = "Clock-in record not found"
	MessageClockInNotModified = "Clock-in record not found or no changes made"
	MessageClockInDeleted     = "Clock-in record deleted"
	MessageNoClockInRecords   = "no records found"
	MessageFailedClockInBody  = "failed to validate clock-in record"

	ErrClockInNotFound       = errors.New("clock-in record not found")
	ErrClockInNotModified    = errors.New("clock-in record not found or no changes made")
	ErrNoClockInRecords      = errors.New("no clock-in records found")
	ErrInvalidInsertDatetime = errors.New("invalid insert datetime")
)

type (
	ClockInRequest struct {
		Email          string `json:"email" validate:"required,email"`
		Location       string `json:"location" validate:"required"`
		InsertDatetime string `json:"insert_datetime" validate:"omitempty"`
	}

	ClockInFilterQuery struct {
		Email          string
		Location       string
		InsertDatetime string
	}

	ClockInResponse struct {
		ID             string `json:"id"`
		Email          string `json:"email"`
		Location       string `json:"location"`
		InsertDatetime string `json:"insert_datetime"`
	}

	CreateClockInResponse struct {
		ID string `json:"id"`
	}
)
