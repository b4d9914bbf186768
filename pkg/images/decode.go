package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gen2brain/avif"
)

func init() {
	image.RegisterFormat("avif", "????ftypavif", avif.Decode, avif.DecodeConfig)
}

var decodedFormats = map[string]Format{
	"jpeg": FormatJPEG,
	"png":  FormatPNG,
	"avif": FormatAVIF,
}

// Image is a decoded upload together with the bytes it was decoded from
type Image struct {
	image.Image
	Name   string
	Format Format
	Source []byte
}

func (i *Image) Width() int {
	return i.Bounds().Dx()
}

func (i *Image) Height() int {
	return i.Bounds().Dy()
}

// Decode guesses the format from the content itself, not the declared media type.
// The declared dimensions are checked against MaxImagePixels before any pixel
// buffer is allocated.
func Decode(name string, data []byte) (*Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err == image.ErrFormat {
		return nil, &Error{Kind: ImageTypeGuessError, Image: name, Err: err}
	}
	if err != nil {
		return nil, &Error{Kind: ImageDecodingError, Image: name, Err: err}
	}

	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, &Error{Kind: ImageDecodingError, Image: name, Err: fmt.Errorf("dimensions %dx%d exceed %d pixels", cfg.Width, cfg.Height, MaxImagePixels)}
	}

	img, kind, err := image.Decode(bytes.NewReader(data))
	if err == image.ErrFormat {
		return nil, &Error{Kind: ImageTypeGuessError, Image: name, Err: err}
	}
	if err != nil {
		return nil, &Error{Kind: ImageDecodingError, Image: name, Err: err}
	}

	f, ok := decodedFormats[kind]
	if !ok {
		return nil, &Error{Kind: ImageTypeGuessError, Image: name, Detail: kind}
	}

	return &Image{Image: img, Name: name, Format: f, Source: data}, nil
}
