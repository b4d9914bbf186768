package images

import (
	"io"

	humanize "github.com/dustin/go-humanize"
)

const readChunkSize = 64 * 1024

// ReadLimited buffers r chunk by chunk and fails with ImageTooLarge as soon as
// the running total passes limit, before the offending chunk is kept.
func ReadLimited(name string, r io.Reader, limit int64) ([]byte, error) {
	data := []byte{}
	chunk := make([]byte, readChunkSize)

	for {
		n, err := r.Read(chunk)

		if n > 0 {
			if int64(len(data)+n) > limit {
				return nil, &Error{Kind: ImageTooLarge, Image: name, Detail: humanize.IBytes(uint64(limit))}
			}

			data = append(data, chunk[:n]...)
		}

		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, &Error{Kind: ReadError, Image: name, Err: err}
		}
	}
}
