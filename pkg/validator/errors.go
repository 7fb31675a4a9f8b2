package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned by ParseKind and RuleFor for unsupported kinds.
	ErrUnknownKind = errors.New("unknown validation kind")
)

// ErrArgumentCount is returned by RuleFor when the number of values does not
// match the kind.
var ErrArgumentCount = errors.New("wrong number of values for validation kind")
