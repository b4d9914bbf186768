package record

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	MissingField Kind = iota + 1
	InvalidData
	InvalidType
	InvalidGenericType
	MissingDelimiter
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case InvalidData:
		return "InvalidData"
	case InvalidType:
		return "InvalidType"
	case InvalidGenericType:
		return "InvalidGenericType"
	case MissingDelimiter:
		return "MissingDelimiter"
	default:
		return "Unknown"
	}
}

// Error is a failure converting one attribute into its typed value
type Error struct {
	Kind     Kind
	Field    string
	Expected string
	Value    string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("field is missing: %s", e.Field)
	case InvalidData:
		return fmt.Sprintf("model has invalid values: %s field is not a %s", e.Field, e.Expected)
	case InvalidType:
		return fmt.Sprintf("field %s is not a %s: %s", e.Field, e.Expected, e.Value)
	case InvalidGenericType:
		return fmt.Sprintf("field %s is not of the expected type: %s", e.Field, e.Value)
	case MissingDelimiter:
		return fmt.Sprintf("field %s is missing delimiter", e.Field)
	default:
		return fmt.Sprintf("field %s could not be decoded", e.Field)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind returns the decode error kind carried by err, if any
func ErrorKind(err error) (Kind, bool) {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

func errMissing(field string) error {
	return &Error{Kind: MissingField, Field: field}
}

func errInvalidData(field string, expected Variant) error {
	return &Error{Kind: InvalidData, Field: field, Expected: expected.String()}
}

func errInvalidType(field, expected, value string, err error) error {
	return &Error{Kind: InvalidType, Field: field, Expected: expected, Value: value, Err: err}
}

func errInvalidGeneric(field, value string, err error) error {
	return &Error{Kind: InvalidGenericType, Field: field, Value: value, Err: err}
}

func errMissingDelimiter(field string) error {
	return &Error{Kind: MissingDelimiter, Field: field}
}
