package helpers

func Coalesce[T comparable](vs ...T) T {
	var zero T

	for _, v := range vs {
		if v != zero {
			return v
		}
	}

	return zero
}
