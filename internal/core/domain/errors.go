package domain

import "errors"

// Validation errors
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidFactor     = errors.New("factor must be positive")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidTicketType = errors.New("unknown ticket type")
)

// Lookup errors
var (
	ErrStationNotFound = errors.New("station not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Purchase errors
var ErrInsufficientFunds = errors.New("insufficient funds")

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin privileges required")
)
