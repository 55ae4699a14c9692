package validation

import "fmt"

// ErrorKind identifies which rule a field failed.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindRequired
	KindEmpty
	KindNotString
	KindNotNumber
	KindNotInteger
	KindYearTooEarly
	KindYearInFuture
	KindUnknownField
	KindNotObject
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRequired:
		return "required"
	case KindEmpty:
		return "empty"
	case KindNotString:
		return "not_string"
	case KindNotNumber:
		return "not_number"
	case KindNotInteger:
		return "not_integer"
	case KindYearTooEarly:
		return "year_too_early"
	case KindYearInFuture:
		return "year_in_future"
	case KindUnknownField:
		return "unknown_field"
	case KindNotObject:
		return "not_object"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FieldError is the first validation failure found in a payload.
type FieldError struct {
	Field string
	Kind  ErrorKind
}

// Error returns the client-facing message, which always names the field.
func (e *FieldError) Error() string {
	field := `"` + e.Field + `"`
	switch e.Kind {
	case KindRequired:
		return field + " is a required field"
	case KindEmpty:
		return field + " cannot be empty"
	case KindNotString:
		return field + " must be a string"
	case KindNotNumber:
		return field + " must be a number"
	case KindNotInteger:
		return field + " must be an integer"
	case KindYearTooEarly:
		return field + " must be a valid 4-digit year"
	case KindYearInFuture:
		return field + " cannot be in the future"
	case KindUnknownField:
		return field + " is not allowed"
	case KindNotObject:
		return field + " must be of type object"
	default:
		return field + " is invalid"
	}
}
