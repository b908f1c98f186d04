package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMalformedPayload = errors.New("malformed game payload")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
