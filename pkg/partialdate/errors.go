package partialdate

import "errors"

var (
	// ErrInvalidDate is returned when the input does not match any supported
	// date format, or contains an out of range component or unknown month name.
	ErrInvalidDate = errors.New("invalid partial date")

	// ErrEmptyInput is returned by MustParse (as a panic value) and by decoders
	// that require a value when the input is blank.
	ErrEmptyInput = errors.New("empty partial date input")

	// ErrUnsupportedType is returned by Scan for source values other than
	// string, []byte, time.Time or nil.
	ErrUnsupportedType = errors.New("unsupported partial date source type")
)
