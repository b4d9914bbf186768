package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	uuid "github.com/satori/go.uuid"
)

// Delimiter separates the type discriminator from the value in packed keys
const Delimiter = "#"

// Parser converts the string form of an attribute into T
type Parser[T any] func(string) (T, error)

// Validator is implemented by nested values that check their own shape after json decoding
type Validator interface {
	Validate() error
}

func attribute(item Item, field string) (*dynamodb.AttributeValue, bool) {
	av, ok := item[field]
	if !ok || av == nil {
		return nil, false
	}

	return av, true
}

func String(item Item, field string) (string, error) {
	av, ok := attribute(item, field)
	if !ok {
		return "", errMissing(field)
	}

	if av.S == nil {
		return "", errInvalidData(field, VariantString)
	}

	return *av.S, nil
}

func Bool(item Item, field string) (bool, error) {
	av, ok := attribute(item, field)
	if !ok {
		return false, errMissing(field)
	}

	if av.BOOL == nil {
		return false, errInvalidData(field, VariantBool)
	}

	return *av.BOOL, nil
}

func Scalar[T any](item Item, field string, parse Parser[T]) (T, error) {
	var zero T

	s, err := String(item, field)
	if err != nil {
		return zero, err
	}

	v, err := parse(s)
	if err != nil {
		return zero, errInvalidGeneric(field, s, err)
	}

	return v, nil
}

// OptionalScalar returns nil when the attribute is absent. A present attribute
// must carry the given variant.
func OptionalScalar[T any](item Item, field string, variant Variant, parse Parser[T]) (*T, error) {
	av, ok := attribute(item, field)
	if !ok {
		return nil, nil
	}

	s, ok := variant.raw(av)
	if !ok {
		return nil, errInvalidData(field, variant)
	}

	v, err := parse(s)
	if err != nil {
		return nil, errInvalidGeneric(field, s, err)
	}

	return &v, nil
}

// StringSet treats an absent attribute as an empty set
func StringSet[T any](item Item, field string, parse Parser[T]) ([]T, error) {
	vs := []T{}

	av, ok := attribute(item, field)
	if !ok {
		return vs, nil
	}

	if av.SS == nil {
		return nil, errInvalidData(field, VariantStringSet)
	}

	for _, m := range av.SS {
		if m == nil {
			continue
		}

		v, err := parse(*m)
		if err != nil {
			return nil, errInvalidGeneric(field, *m, err)
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func Nested[T any](item Item, field string) (T, error) {
	var v T

	s, err := String(item, field)
	if err != nil {
		return v, err
	}

	if err := unmarshalNested(field, s, &v); err != nil {
		return v, err
	}

	return v, nil
}

func OptionalNested[T any](item Item, field string) (*T, error) {
	if _, ok := attribute(item, field); !ok {
		return nil, nil
	}

	v, err := Nested[T](item, field)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func unmarshalNested(field, raw string, v interface{}) error {
	data := []byte(raw)

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errInvalidGeneric(field, raw, fmt.Errorf("null document"))
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errInvalidGeneric(field, raw, err)
	}

	if vv, ok := v.(Validator); ok {
		if err := vv.Validate(); err != nil {
			return errInvalidGeneric(field, raw, err)
		}
	}

	return nil
}

func Delimited[T any](item Item, field string, parse Parser[T]) (T, error) {
	var zero T

	s, err := String(item, field)
	if err != nil {
		return zero, err
	}

	suffix, err := split(field, s)
	if err != nil {
		return zero, err
	}

	v, err := parse(suffix)
	if err != nil {
		return zero, errInvalidGeneric(field, s, err)
	}

	return v, nil
}

func DelimitedTime(item Item, field string) (time.Time, error) {
	s, err := String(item, field)
	if err != nil {
		return time.Time{}, err
	}

	suffix, err := split(field, s)
	if err != nil {
		return time.Time{}, err
	}

	return parseTime(field, suffix)
}

func Time(item Item, field string) (time.Time, error) {
	s, err := String(item, field)
	if err != nil {
		return time.Time{}, err
	}

	return parseTime(field, s)
}

func OptionalTime(item Item, field string) (*time.Time, error) {
	if _, ok := attribute(item, field); !ok {
		return nil, nil
	}

	t, err := Time(item, field)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func split(field, s string) (string, error) {
	i := strings.LastIndex(s, Delimiter)
	if i < 0 {
		return "", errMissingDelimiter(field)
	}

	return s[i+len(Delimiter):], nil
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidType(field, "Rfc3339", s, err)
	}

	return t, nil
}

/** parsers ****************************************************************************************/

func ParseString(s string) (string, error) {
	return s, nil
}

func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.FromString(s)
}

func ParseUint16(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}

	return uint16(n), nil
}

func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}
