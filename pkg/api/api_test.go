package api_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/convox/events/pkg/api"
	"github.com/convox/events/pkg/config"
	"github.com/convox/events/pkg/jwt"
	"github.com/convox/events/pkg/options"
	"github.com/convox/events/pkg/record"
	"github.com/convox/events/pkg/structs"
	"github.com/convox/logger"
	"github.com/convox/stdapi"
	"github.com/convox/stdsdk"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	fxId      = "0f9d7e5a-3a67-4b8e-9d6f-7c1c0c1e2b3a"
	fxSortKey = "EventDate#2024-06-01T10:00:00Z"
)

var fxKey = structs.EventKey{PartitionKey: "Event#" + fxId, SortKey: fxSortKey}

var avifOptions = structs.ObjectStoreOptions{ContentType: options.String("image/avif")}

var fxConfig = &config.Config{
	Provider:             "local",
	BucketPrefix:         "events",
	ContentCreatorsGroup: "content-creators",
}

func fxItem() record.Item {
	return record.Item{
		"PK":               {S: aws.String("Event#" + fxId)},
		"SK":               {S: aws.String(fxSortKey)},
		"SignupEndDate":    {S: aws.String("2024-05-25T00:00:00Z")},
		"EventCreator":     {S: aws.String("alice")},
		"Description":      {S: aws.String(`{"fi":"Kuvaus","en":"Description"}`)},
		"Title":            {S: aws.String(`{"fi":"Kevätretki","en":"Spring hike"}`)},
		"Contact":          {S: aws.String(`{"email":"alice@example.com","emailVisible":true}`)},
		"Location":         {S: aws.String(`{"name":"Nuuksio","link":"https://example.com/nuuksio"}`)},
		"ParticipantLimit": {N: aws.String("25")},
	}
}

func fxPNG(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func fakeEncode(w io.Writer, img image.Image) error {
	_, err := w.Write([]byte("avif"))
	return err
}

func objectKey(k string) bool {
	return strings.HasPrefix(k, "events/"+fxId+"/") && strings.HasSuffix(k, ".avif")
}

func token(t *testing.T, subject string, groups ...string) string {
	tk, err := jwt.NewJwtManager("test").Token(subject, groups, time.Hour)
	require.NoError(t, err)
	return tk
}

func bearer(t *testing.T, subject string, groups ...string) stdsdk.Headers {
	return stdsdk.Headers{"Authorization": "Bearer " + token(t, subject, groups...)}
}

func testServer(t *testing.T, fn func(*stdsdk.Client, *structs.MockProvider)) {
	p := &structs.MockProvider{}
	p.On("Initialize", mock.Anything).Return(nil)

	s := api.NewWithProvider(p, fxConfig)
	s.Logger = logger.Discard
	s.Server.Recover = func(err error, _ *stdapi.Context) {
		require.NoError(t, err, "httptest server panic")
	}

	s.Images.Primary.Encoder = fakeEncode
	s.Images.Gallery.Encoder = fakeEncode

	ht := httptest.NewServer(s)
	defer ht.Close()

	c, err := stdsdk.New(ht.URL)
	require.NoError(t, err)

	fn(c, p)

	p.AssertExpectations(t)
}

// requestError sends a request that is expected to fail and decodes the error body
func requestError(t *testing.T, c *stdsdk.Client, method, path string, opts stdsdk.RequestOptions) (int, api.Error) {
	req, err := c.Request(method, path, opts)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var e api.Error
	require.NoError(t, json.NewDecoder(res.Body).Decode(&e))

	return res.StatusCode, e
}

func TestCheck(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, p *structs.MockProvider) {
		res, err := c.GetStream("/check", stdsdk.RequestOptions{})
		require.NoError(t, err)
		defer res.Body.Close()
		data, err := ioutil.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, "ok\n", string(data))
	})
}

func TestUnknownRoute(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, p *structs.MockProvider) {
		err := c.Get("/api/public/events", stdsdk.RequestOptions{}, nil)
		require.Error(t, err)
	})
}

func TestRoutesStayInTheirPrefix(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, p *structs.MockProvider) {
		res, err := c.GetStream("/api/admin/event/"+fxId, stdsdk.RequestOptions{Headers: bearer(t, "alice", "content-creators")})
		if res != nil {
			res.Body.Close()
		}
		require.Error(t, err)

		err = c.Put("/api/public/event/"+fxId+"/image", stdsdk.RequestOptions{}, nil)
		require.Error(t, err)

		code, _ := requestError(t, c, "PUT", "/api/admin/event/"+fxId+"/image", stdsdk.RequestOptions{})
		require.Equal(t, 401, code)
	})
}
