package cli

import "github.com/convox/events/pkg/images"

func SetNormalizer(fn func() *images.Normalizer) func() {
	prev := normalizer
	normalizer = fn
	return func() { normalizer = prev }
}
