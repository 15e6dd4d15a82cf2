package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnknownStatus      = errors.New("unknown status")
	ErrMissingChallanType = errors.New("challan type must be provided")
	ErrEmptySelection     = errors.New("challan requires at least one order")
)
