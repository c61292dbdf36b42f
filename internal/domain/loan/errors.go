package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrAlreadyExists     = errors.New("active loan already exists")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidTerm       = errors.New("term months out of range")
	ErrInsufficientScore = errors.New("credit score below application floor")
	ErrUnauthorized      = errors.New("caller not authorized")
	ErrInvalidTransition = errors.New("invalid status transition")
)
