package api

import (
	"encoding/json"
	"net/http"

	"github.com/convox/events/pkg/events"
	"github.com/convox/events/pkg/helpers"
	"github.com/convox/events/pkg/images"
	"github.com/convox/stdapi"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Error is the json body of every failed request
type Error struct {
	Message string            `json:"error"`
	Code    string            `json:"errorCode"`
	Params  map[string]string `json:"errorParams"`
}

type apiError struct {
	status int
	code   string
	params map[string]string
	err    error
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) Unwrap() error {
	return e.err
}

func errUnauthorized(err error) error {
	return &apiError{status: http.StatusUnauthorized, code: "UNAUTHORIZED", err: err}
}

func errForbidden(err error) error {
	return &apiError{status: http.StatusForbidden, code: "FORBIDDEN", err: err}
}

func errInvalidEventId(id string, err error) error {
	return &apiError{status: http.StatusBadRequest, code: "INVALID_EVENT_ID", params: map[string]string{"id": id}, err: err}
}

// render turns any error returned below it into a json error response
func (s *Server) render(next stdapi.HandlerFunc) stdapi.HandlerFunc {
	return func(c *stdapi.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}

		e := classify(err)

		log := Logger.At(c.Name()).Namespace("id=%s", c.Context().Value("request.id"))

		if e.status >= 500 {
			helpers.Error(log, err)
		} else {
			log.Logf("code=%s status=%d error=%q", e.code, e.status, err.Error())
		}

		return renderError(c, e)
	}
}

func renderError(c *stdapi.Context, e *apiError) error {
	body := Error{
		Message: e.err.Error(),
		Code:    e.code,
		Params:  e.params,
	}

	if e.status >= 500 {
		body.Message = "server error"
	}

	if body.Params == nil {
		body.Params = map[string]string{}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Content-Type", "application/json")
	c.Response().WriteHeader(e.status)

	if _, err := c.Response().Write(data); err != nil {
		return err
	}

	return nil
}

func classify(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}

	var ee *events.Error
	if errors.As(err, &ee) {
		return classifyEvent(ee)
	}

	var ie *images.Error
	if errors.As(err, &ie) {
		return classifyImage(ie)
	}

	return &apiError{status: http.StatusInternalServerError, code: "UNEXPECTED_SERVER_ERROR", err: err}
}

func classifyEvent(e *events.Error) *apiError {
	ae := &apiError{err: e, params: map[string]string{}}

	switch e.Kind {
	case events.NotFound:
		ae.status, ae.code = http.StatusNotFound, "EVENT_NOT_FOUND"
		ae.params["id"] = e.Id.String()
	case events.InvalidStoredEvent:
		ae.status, ae.code = http.StatusInternalServerError, "INVALID_STORED_EVENT"
		ae.params["id"] = e.Id.String()
	case events.NotEventOwner:
		ae.status, ae.code = http.StatusForbidden, "NOT_EVENT_OWNER"
	default:
		ae.status, ae.code = http.StatusInternalServerError, "UNEXPECTED_SERVER_ERROR"
	}

	return ae
}

func classifyImage(e *images.Error) *apiError {
	ae := &apiError{err: e, status: http.StatusBadRequest, params: map[string]string{}}

	switch e.Kind {
	case images.UnsupportedImageFormat:
		ae.code = "UNSUPPORTED_IMAGE_FORMAT"
		ae.params["image"] = e.Image
	case images.ImageTypeGuessError, images.ImageDecodingError:
		ae.code = "IMAGE_CONVERSION_ERROR"
		ae.params["image"] = e.Image
	case images.ImageEncodingError:
		ae.status, ae.code = http.StatusInternalServerError, "IMAGE_CONVERSION_ERROR"
	case images.ImageTooLarge:
		ae.code = "IMAGE_TOO_LARGE"
		ae.params["image"] = e.Image
	case images.ImageTooSmall:
		ae.code = "IMAGE_TOO_SMALL"
		ae.params["image"] = e.Image
	case images.InvalidImage:
		ae.code = "INVALID_IMAGE"
	case images.ReadError:
		ae.code = "MULTIPART_READ_ERROR"
	case images.StorageError:
		ae.status, ae.code = http.StatusInternalServerError, "IMAGE_STORAGE_ERROR"
	default:
		ae.status, ae.code = http.StatusInternalServerError, "UNEXPECTED_SERVER_ERROR"
	}

	return ae
}

func eventId(c *stdapi.Context) (uuid.UUID, error) {
	raw := c.Var("id")

	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, errInvalidEventId(raw, err)
	}

	return id, nil
}
