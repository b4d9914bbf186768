package images

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	InvalidImage Kind = iota + 1
	UnsupportedImageFormat
	ImageTooLarge
	ImageTooSmall
	ImageTypeGuessError
	ImageDecodingError
	ImageEncodingError
	ReadError
	StorageError
)

func (k Kind) String() string {
	switch k {
	case InvalidImage:
		return "InvalidImage"
	case UnsupportedImageFormat:
		return "UnsupportedImageFormat"
	case ImageTooLarge:
		return "ImageTooLarge"
	case ImageTooSmall:
		return "ImageTooSmall"
	case ImageTypeGuessError:
		return "ImageTypeGuessError"
	case ImageDecodingError:
		return "ImageDecodingError"
	case ImageEncodingError:
		return "ImageEncodingError"
	case ReadError:
		return "ReadError"
	case StorageError:
		return "StorageError"
	default:
		return "Unknown"
	}
}

// Error is a terminal failure for one uploaded image
type Error struct {
	Kind   Kind
	Image  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var msg string

	switch e.Kind {
	case InvalidImage:
		msg = "invalid image"
	case UnsupportedImageFormat:
		msg = fmt.Sprintf("unsupported image format: %q", e.Detail)
	case ImageTooLarge:
		msg = fmt.Sprintf("image is larger than %s", e.Detail)
	case ImageTooSmall:
		msg = fmt.Sprintf("image is smaller than %dx%d", MinImageDimension, MinImageDimension)
	case ImageTypeGuessError:
		msg = "could not determine image type"
	case ImageDecodingError:
		msg = "could not decode image"
	case ImageEncodingError:
		msg = "could not encode image"
	case ReadError:
		msg = "could not read image"
	case StorageError:
		msg = "could not store image"
	default:
		msg = "image error"
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}

	if e.Image != "" {
		return fmt.Sprintf("%s: %s", e.Image, msg)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// User is true for failures caused by the uploaded content rather than the service
func (e *Error) User() bool {
	switch e.Kind {
	case ImageEncodingError, StorageError:
		return false
	default:
		return true
	}
}

// ErrorKind returns the image error kind carried by err, if any
func ErrorKind(err error) (Kind, bool) {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
