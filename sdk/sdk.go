package sdk

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/convox/events/pkg/structs"
	"github.com/convox/stdsdk"
)

type Interface interface {
	EventGet(id string) (*structs.Event, error)
	EventImagePut(id string, image Image) (*structs.ImagePutResult, error)
	EventImagesAdd(id string, images []Image) (*structs.ImagesAddResult, error)
}

// Image is one file to upload
type Image struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type Client struct {
	*stdsdk.Client
	Token   string
	Version string
}

var _ Interface = &Client{}

func New(endpoint string) (*Client, error) {
	if endpoint == "" {
		endpoint = "http://localhost:5000"
	}

	s, err := stdsdk.New(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Client:  s,
		Version: "dev",
	}

	c.Client.Headers = c.Headers

	return c, nil
}

func NewFromEnv() (*Client, error) {
	c, err := New(os.Getenv("EVENTS_URL"))
	if err != nil {
		return nil, err
	}

	c.Token = os.Getenv("EVENTS_TOKEN")

	return c, nil
}

func (c *Client) Headers() http.Header {
	h := http.Header{}

	h.Set("User-Agent", fmt.Sprintf("events.go/%s", c.Version))

	if c.Token != "" {
		h.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	return h
}
