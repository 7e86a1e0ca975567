package service

import "errors"

// Errors returned by the service wrap one of these kinds; match with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("transaction not found")
	ErrStorageFailure = errors.New("storage failure")
)
