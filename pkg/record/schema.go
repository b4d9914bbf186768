package record

// Column binds one stored attribute to the decoder that fills its field on T
type Column[T any] struct {
	Name     string
	Variant  Variant
	Required bool
	Decode   func(Item, *T) error
}

// Schema is an ordered column table. Decoding stops at the first failing column.
type Schema[T any] []Column[T]

func (s Schema[T]) Decode(item Item) (*T, error) {
	var v T

	for _, c := range s {
		av, ok := attribute(item, c.Name)

		switch {
		case !ok && c.Required:
			return nil, errMissing(c.Name)
		case ok && VariantOf(av) != c.Variant:
			return nil, errInvalidData(c.Name, c.Variant)
		}

		if err := c.Decode(item, &v); err != nil {
			return nil, err
		}
	}

	return &v, nil
}
