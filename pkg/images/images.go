package images

import (
	"image"
	"strings"

	"github.com/convox/logger"
	units "github.com/docker/go-units"
)

const (
	// MinImageDimension is the smallest accepted width or height
	MinImageDimension = 800

	// MaxImageDimension bounds stored images on both axes
	MaxImageDimension = 1280

	// MaxImageSize is the largest accepted upload body
	MaxImageSize = 10 * units.MiB

	// MaxImagePixels caps the declared width times height accepted for decoding,
	// 512 MiB of 4 byte pixels. Compressed formats can declare far more pixels
	// than their byte size suggests.
	MaxImagePixels = 512 * units.MiB / 4
)

var Logger = logger.New("ns=images")

type Format string

const (
	FormatJPEG Format = "image/jpeg"
	FormatPNG  Format = "image/png"
	FormatAVIF Format = "image/avif"
)

// Formats lists every media type the pipeline accepts
var Formats = []Format{FormatJPEG, FormatPNG, FormatAVIF}

func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	case FormatAVIF:
		return "avif"
	default:
		return ""
	}
}

func (f Format) String() string {
	return string(f)
}

// Classify maps a declared media type onto a supported format. When accept is
// given the format must also be one of those.
func Classify(name, mediaType string, accept ...Format) (Format, error) {
	if len(accept) == 0 {
		accept = Formats
	}

	for _, f := range accept {
		if mediaType == string(f) {
			return f, nil
		}
	}

	return "", &Error{Kind: UnsupportedImageFormat, Image: name, Detail: strings.TrimSpace(mediaType)}
}

// TooSmall is true when either axis is below MinImageDimension
func TooSmall(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() < MinImageDimension || b.Dy() < MinImageDimension
}

// WithinBounds is true only when both axes are strictly below MaxImageDimension.
// An image exactly MaxImageDimension wide is therefore resized.
func WithinBounds(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() < MaxImageDimension && b.Dy() < MaxImageDimension
}
