package record

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Item is one raw record as returned by a point query against the table
type Item map[string]*dynamodb.AttributeValue

type Variant int

const (
	VariantUnknown Variant = iota
	VariantString
	VariantNumber
	VariantBool
	VariantStringSet
	VariantNull
)

func (v Variant) String() string {
	switch v {
	case VariantString:
		return "string"
	case VariantNumber:
		return "number"
	case VariantBool:
		return "boolean"
	case VariantStringSet:
		return "string set"
	case VariantNull:
		return "null"
	default:
		return "unknown"
	}
}

// VariantOf reports which tagged variant an attribute carries
func VariantOf(av *dynamodb.AttributeValue) Variant {
	switch {
	case av == nil:
		return VariantUnknown
	case av.S != nil:
		return VariantString
	case av.N != nil:
		return VariantNumber
	case av.BOOL != nil:
		return VariantBool
	case av.SS != nil:
		return VariantStringSet
	case av.NULL != nil && *av.NULL:
		return VariantNull
	default:
		return VariantUnknown
	}
}

// raw returns the string form of a scalar attribute when it carries the given variant
func (v Variant) raw(av *dynamodb.AttributeValue) (string, bool) {
	switch v {
	case VariantString:
		if av.S != nil {
			return *av.S, true
		}
	case VariantNumber:
		if av.N != nil {
			return *av.N, true
		}
	}

	return "", false
}

// MarshalJSON writes the item in the table's wire json form, omitting unset variants
func (i Item) MarshalJSON() ([]byte, error) {
	out := map[string]map[string]interface{}{}

	for k, av := range i {
		if av == nil {
			continue
		}

		v := map[string]interface{}{}

		if av.S != nil {
			v["S"] = *av.S
		}
		if av.N != nil {
			v["N"] = *av.N
		}
		if av.BOOL != nil {
			v["BOOL"] = *av.BOOL
		}
		if av.SS != nil {
			v["SS"] = av.SS
		}
		if av.NULL != nil {
			v["NULL"] = *av.NULL
		}

		out[k] = v
	}

	return json.Marshal(out)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var m map[string]*dynamodb.AttributeValue

	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*i = Item(m)

	return nil
}
