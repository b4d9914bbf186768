package sdk

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"

	"github.com/convox/events/pkg/structs"
	"github.com/convox/stdsdk"
)

func (c *Client) EventGet(id string) (*structs.Event, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}}

	var v *structs.Event

	err = c.Get(fmt.Sprintf("/api/public/event/%s", id), ro, &v)

	return v, err
}

func (c *Client) EventImagePut(id string, image Image) (*structs.ImagePutResult, error) {
	var err error

	ro := stdsdk.RequestOptions{
		Body: image.Body,
		Headers: stdsdk.Headers{
			"Content-Type": image.ContentType,
		},
	}

	if image.Name != "" {
		ro.Headers["Content-Disposition"] = mime.FormatMediaType("attachment", map[string]string{"filename": image.Name})
	}

	var v *structs.ImagePutResult

	err = c.Put(fmt.Sprintf("/api/admin/event/%s/image", id), ro, &v)

	return v, err
}

func (c *Client) EventImagesAdd(id string, images []Image) (*structs.ImagesAddResult, error) {
	var err error

	body, ct, err := multipartImages(images)
	if err != nil {
		return nil, err
	}

	ro := stdsdk.RequestOptions{
		Body: body,
		Headers: stdsdk.Headers{
			"Content-Type": ct,
		},
	}

	var v *structs.ImagesAddResult

	err = c.Post(fmt.Sprintf("/api/admin/event/%s/images", id), ro, &v)

	return v, err
}

func multipartImages(images []Image) (io.Reader, string, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for _, img := range images {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": "images", "filename": img.Name}))
		h.Set("Content-Type", img.ContentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}

		if _, err := io.Copy(part, img.Body); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
