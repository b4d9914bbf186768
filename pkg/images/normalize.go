package images

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"path"

	humanize "github.com/dustin/go-humanize"
	"github.com/gen2brain/avif"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/image/draw"
)

// Encoder writes img in the stored format
type Encoder func(w io.Writer, img image.Image) error

func EncodeAVIF(w io.Writer, img image.Image) error {
	return avif.Encode(w, img, avif.Options{Quality: 75, QualityAlpha: 75, Speed: 8})
}

// Upload is one image as received from a client
type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Encoded is a normalized image ready to be stored
type Encoded struct {
	Id          uuid.UUID
	Name        string
	Data        []byte
	Width       int
	Height      int
	PassThrough bool
}

func (e *Encoded) Filename() string {
	return fmt.Sprintf("%s.%s", e.Id, FormatAVIF.Extension())
}

// Key is the object path for the image under prefix for the given event
func (e *Encoded) Key(prefix string, event uuid.UUID) string {
	return path.Join(prefix, event.String(), e.Filename())
}

type Normalizer struct {
	Encoder Encoder
	Limit   int64
	Accept  []Format
}

func NewNormalizer(accept ...Format) *Normalizer {
	return &Normalizer{
		Encoder: EncodeAVIF,
		Limit:   MaxImageSize,
		Accept:  accept,
	}
}

// Normalize returns the stored form of img. An AVIF already inside the bounds
// is returned as uploaded, anything else is fit into the bounds and encoded.
func (n *Normalizer) Normalize(img *Image) ([]byte, error) {
	if img.Format == FormatAVIF && WithinBounds(img) {
		return img.Source, nil
	}

	var src image.Image = img.Image

	if !WithinBounds(img) {
		src = Resize(img.Image, MaxImageDimension, MaxImageDimension)
	}

	var buf bytes.Buffer

	if err := n.Encoder(&buf, src); err != nil {
		return nil, &Error{Kind: ImageEncodingError, Image: img.Name, Err: err}
	}

	return buf.Bytes(), nil
}

// Process runs one upload through classification, bounded read, decode,
// dimension checks and normalization.
func (n *Normalizer) Process(u Upload) (*Encoded, error) {
	log := Logger.At("Process").Namespace("image=%q", u.Name).Start()

	if u.Name == "" {
		return nil, log.Error(&Error{Kind: InvalidImage, Err: fmt.Errorf("missing file name")})
	}

	format, err := Classify(u.Name, u.ContentType, n.Accept...)
	if err != nil {
		return nil, log.Error(err)
	}

	data, err := ReadLimited(u.Name, u.Body, n.limit())
	if err != nil {
		return nil, log.Error(err)
	}

	log.Logf("declared=%s size=%s", format, humanize.Bytes(uint64(len(data))))

	img, err := Decode(u.Name, data)
	if err != nil {
		return nil, log.Error(err)
	}

	if TooSmall(img) {
		return nil, log.Error(&Error{Kind: ImageTooSmall, Image: u.Name, Detail: fmt.Sprintf("%dx%d", img.Width(), img.Height())})
	}

	out, err := n.Normalize(img)
	if err != nil {
		return nil, log.Error(err)
	}

	w, h := img.Width(), img.Height()

	if !WithinBounds(img) {
		w, h = FitDimensions(w, h, MaxImageDimension, MaxImageDimension)
	}

	e := &Encoded{
		Id:          uuid.NewV4(),
		Name:        u.Name,
		Data:        out,
		Width:       w,
		Height:      h,
		PassThrough: img.Format == FormatAVIF && WithinBounds(img),
	}

	log.Successf("id=%s width=%d height=%d size=%s", e.Id, e.Width, e.Height, humanize.Bytes(uint64(len(out))))

	return e, nil
}

func (n *Normalizer) limit() int64 {
	if n.Limit > 0 {
		return n.Limit
	}

	return MaxImageSize
}

// Resize scales img with Catmull-Rom to the largest size that fits inside
// width x height while keeping its aspect ratio.
func Resize(img image.Image, width, height int) image.Image {
	w, h := FitDimensions(img.Bounds().Dx(), img.Bounds().Dy(), width, height)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dst
}

func FitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	ratio := math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))

	w := int(math.Round(float64(width) * ratio))
	h := int(math.Round(float64(height) * ratio))

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return w, h
}
