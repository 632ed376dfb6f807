package enum

import "errors"

var (
	ErrUnknownValue = errors.New("unknown enum value")
	ErrInvalidJSON  = errors.New("enum value must be a JSON string or null")
)
