package images_test

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/convox/events/pkg/images"
	"github.com/stretchr/testify/require"
)

// fxSparsePNG writes a w x h 8 bit grayscale png of zero pixels. Rows are
// streamed through zlib one at a time so only the compressed form is held.
func fxSparsePNG(t *testing.T, w, h int) []byte {
	var idat bytes.Buffer

	zw := zlib.NewWriter(&idat)
	row := make([]byte, w+1)

	for y := 0; y < h; y++ {
		_, err := zw.Write(row)
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 0 // grayscale

	var buf bytes.Buffer

	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(kind string, data []byte) {
		binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		crc := crc32.NewIEEE()
		crc.Write([]byte(kind))
		crc.Write(data)
		buf.WriteString(kind)
		buf.Write(data)
		binary.Write(&buf, binary.BigEndian, crc.Sum32())
	}

	chunk("IHDR", ihdr)
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)

	return buf.Bytes()
}

func TestDecodeRejectsExcessivePixels(t *testing.T) {
	data := fxSparsePNG(t, 20000, 20000)
	require.Less(t, len(data), images.MaxImageSize)

	_, err := images.Decode("huge.png", data)
	requireKind(t, err, images.ImageDecodingError)
	require.Contains(t, err.Error(), "huge.png")
	require.Contains(t, err.Error(), "20000x20000")
}

func TestDecodePixelLimitBoundary(t *testing.T) {
	data := fxSparsePNG(t, 1024, 1024)

	img, err := images.Decode("ok.png", data)
	require.NoError(t, err)
	require.Equal(t, 1024, img.Width())
	require.Equal(t, images.FormatPNG, img.Format)
}

func TestProcessRejectsExcessivePixels(t *testing.T) {
	s := &spy{}
	n := images.NewNormalizer()
	n.Encoder = s.Encode

	_, err := n.Process(images.Upload{Name: "huge.png", ContentType: "image/png", Body: bytes.NewReader(fxSparsePNG(t, 20000, 20000))})
	requireKind(t, err, images.ImageDecodingError)
	require.Empty(t, s.calls)
}
