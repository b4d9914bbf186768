package api

import (
	"io"
	"mime"
	"mime/multipart"

	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/images"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/stdapi"
)

func (s *Server) EventGet(c *stdapi.Context) error {
	id, err := eventId(c)
	if err != nil {
		return err
	}

	e, err := s.Queries.EventGet(c.Context(), id)
	if err != nil {
		return err
	}

	return c.RenderJSON(e)
}

func (s *Server) EventImagePut(c *stdapi.Context) error {
	id, err := eventId(c)
	if err != nil {
		return err
	}

	subject := claims(c).Identity()

	u := images.Upload{
		Name:        uploadName(c.Header("Content-Disposition")),
		ContentType: mediaType(c.Header("Content-Type")),
		Body:        c.Request().Body,
	}

	enc, err := s.Images.ImagePut(c.Context(), id, subject, u)
	if err != nil {
		return err
	}

	helpers.TrackEvent("Event Image Updated", subject, map[string]interface{}{
		"event": id.String(),
		"image": enc.Id.String(),
		"bytes": len(enc.Data),
	})

	return c.RenderJSON(structs.ImagePutResult{ImageId: enc.Id.String()})
}

func (s *Server) EventImagesAdd(c *stdapi.Context) error {
	id, err := eventId(c)
	if err != nil {
		return err
	}

	subject := claims(c).Identity()

	mr, err := c.Request().MultipartReader()
	if err != nil {
		return &images.Error{Kind: images.ReadError, Err: err}
	}

	encs, err := s.Images.ImagesAdd(c.Context(), id, subject, &multipartUploads{reader: mr})
	if err != nil {
		return err
	}

	res := structs.ImagesAddResult{Event: id.String(), Images: []string{}}

	for _, enc := range encs {
		res.Images = append(res.Images, enc.Filename())
	}

	helpers.TrackEvent("Event Images Added", subject, map[string]interface{}{
		"event":  id.String(),
		"images": len(encs),
	})

	return c.RenderJSON(res)
}

// multipartUploads yields one upload per file part
type multipartUploads struct {
	reader *multipart.Reader
}

func (m *multipartUploads) Next() (*images.Upload, error) {
	part, err := m.reader.NextPart()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, &images.Error{Kind: images.ReadError, Err: err}
	}

	if part.FileName() == "" {
		return nil, &images.Error{Kind: images.InvalidImage, Image: part.FormName()}
	}

	return &images.Upload{
		Name:        part.FileName(),
		ContentType: mediaType(part.Header.Get("Content-Type")),
		Body:        part,
	}, nil
}

func mediaType(header string) string {
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}

	return mt
}

func uploadName(disposition string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}

	return "image"
}
