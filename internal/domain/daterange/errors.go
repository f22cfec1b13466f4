package daterange

import "errors"

var (
	ErrInsufficientFields = errors.New("at least two of start date, end date, or days are required")
	ErrStartAfterEnd      = errors.New("start date cannot be after end date")
	ErrDaysNegative       = errors.New("days must be at least 0")
	ErrDaysTooLarge       = errors.New("days must be at most 1000000")
)
