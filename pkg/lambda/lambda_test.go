package lambda_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/convox/events/pkg/lambda"
	"github.com/convox/logger"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Output = &bytes.Buffer{}
}

func fxRequest(method, path, query, body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RawPath:        path,
		RawQueryString: query,
		Headers: map[string]string{
			"authorization": "Bearer abc",
			"content-type":  "image/png",
		},
		Body: body,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			DomainName: "api.example.com",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   method,
				Path:     path,
				SourceIP: "10.0.0.1",
			},
		},
	}
}

func TestRequest(t *testing.T) {
	req := fxRequest("PUT", "/api/admin/event/x/image", "a=1&b=2", base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'}))
	req.IsBase64Encoded = true
	req.Cookies = []string{"a=1", "b=2"}

	r, err := lambda.Request(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, "PUT", r.Method)
	require.Equal(t, "/api/admin/event/x/image", r.URL.Path)
	require.Equal(t, "1", r.URL.Query().Get("a"))
	require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
	require.Equal(t, "image/png", r.Header.Get("Content-Type"))
	require.Equal(t, "a=1; b=2", r.Header.Get("Cookie"))
	require.Equal(t, "api.example.com", r.Host)
	require.Equal(t, int64(4), r.ContentLength)

	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestRequestBadBase64(t *testing.T) {
	req := fxRequest("PUT", "/", "", "!!!")
	req.IsBase64Encoded = true

	_, err := lambda.Request(context.Background(), req)
	require.Error(t, err)
}

func TestServeJSON(t *testing.T) {
	h := lambda.New(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Set-Cookie", "s=1")
		w.WriteHeader(201)
		fmt.Fprintf(w, `{"path":%q,"body":%q}`, r.URL.Path, string(data))
	}))

	res, err := h.Serve(context.Background(), fxRequest("POST", "/api/x", "", "hello"))
	require.NoError(t, err)

	require.Equal(t, 201, res.StatusCode)
	require.False(t, res.IsBase64Encoded)
	require.Equal(t, `{"path":"/api/x","body":"hello"}`, res.Body)
	require.Equal(t, "application/json", res.Headers["Content-Type"])
	require.Equal(t, []string{"s=1"}, res.Cookies)
}

func TestServeBinary(t *testing.T) {
	h := lambda.New(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/avif")
		w.Write([]byte{0, 1, 2})
	}))

	res, err := h.Serve(context.Background(), fxRequest("GET", "/img", "", ""))
	require.NoError(t, err)

	require.Equal(t, 200, res.StatusCode)
	require.True(t, res.IsBase64Encoded)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte{0, 1, 2}), res.Body)
}
