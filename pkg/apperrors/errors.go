package apperrors

import "errors"

var (
	ErrEmptyQuestion  = errors.New("question must not be empty")
	ErrEmptyDataset   = errors.New("dataset must declare at least one column")
	ErrInvalidPayload = errors.New("invalid request payload")
)
