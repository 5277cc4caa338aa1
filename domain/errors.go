package domain

import "errors"

var (
	ErrInvalidTerm      = errors.New("term must be one of 36, 48, 60, 72 or 84 months")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrNoAffordableTerm = errors.New("no term fits the monthly budget")
	ErrInvalidBudget    = errors.New("monthly budget must not be negative")
)
