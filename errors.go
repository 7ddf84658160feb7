package childes

import "errors"

// Header errors
var (
	// ErrMissingHeader indicates a required header line is absent from the
	// transcript. Wrapped errors name the header, e.g. "@Participants".
	ErrMissingHeader = errors.New("required header not found")

	// ErrMalformedAge indicates the age field is not in "years;months.days"
	// notation.
	ErrMalformedAge = errors.New("age not in years;months.days notation")
)

// Metrics errors
var (
	// ErrInvalidMatchMode indicates an unsupported frequency filter mode.
	ErrInvalidMatchMode = errors.New("invalid match mode")
)
