package errors

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNoRegisteredUsers = errors.New("no registered users yet")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidTicketType = errors.New("unknown ticket type")
	ErrInvalidRole       = errors.New("unknown user category")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNilTicket         = errors.New("ticket is nil")
	ErrNilUser           = errors.New("user is nil")
	ErrInternal          = errors.New("internal error")
)
