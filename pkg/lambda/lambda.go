// Package lambda serves API Gateway HTTP API events through an http.Handler.
package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/convox/logger"
	"github.com/pkg/errors"
)

var Logger = logger.New("ns=lambda")

type Handler struct {
	Handler http.Handler
}

func New(h http.Handler) *Handler {
	return &Handler{Handler: h}
}

func (h *Handler) Serve(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log := Logger.At("Serve").Namespace("method=%s path=%q", req.RequestContext.HTTP.Method, req.RawPath).Start()

	r, err := Request(ctx, req)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, log.Error(err)
	}

	w := httptest.NewRecorder()

	h.Handler.ServeHTTP(w, r)

	res, err := Response(w.Result())
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, log.Error(err)
	}

	log.Successf("status=%d", res.StatusCode)

	return res, nil
}

// Request converts an HTTP API (payload 2.0) event into an http.Request
func Request(ctx context.Context, req events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(req.Body)

	if req.IsBase64Encoded {
		data, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode body")
		}
		body = data
	}

	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	uri := path
	if req.RawQueryString != "" {
		uri += "?" + req.RawQueryString
	}

	method := req.RequestContext.HTTP.Method
	if method == "" {
		method = "GET"
	}

	r, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	if len(req.Cookies) > 0 {
		r.Header.Set("Cookie", strings.Join(req.Cookies, "; "))
	}

	r.ContentLength = int64(len(body))
	r.Host = req.RequestContext.DomainName
	r.RemoteAddr = req.RequestContext.HTTP.SourceIP
	r.RequestURI = uri

	if h := r.Header.Get("Host"); h != "" {
		r.Host = h
	}

	return r, nil
}

// Response converts a handler response into an HTTP API result. Bodies that
// are not text are base64 encoded.
func Response(res *http.Response) (events.APIGatewayV2HTTPResponse, error) {
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, errors.WithStack(err)
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: res.StatusCode,
		Headers:    map[string]string{},
	}

	for k, vs := range res.Header {
		if k == "Set-Cookie" {
			out.Cookies = append(out.Cookies, vs...)
			continue
		}
		out.Headers[k] = strings.Join(vs, ",")
	}

	if textual(res.Header.Get("Content-Type")) {
		out.Body = string(data)
	} else {
		out.Body = base64.StdEncoding.EncodeToString(data)
		out.IsBase64Encoded = true
	}

	return out, nil
}

func textual(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	switch {
	case ct == "":
		return true
	case strings.HasPrefix(ct, "text/"):
		return true
	case ct == "application/json", ct == "application/xml", ct == "application/javascript":
		return true
	case strings.HasSuffix(ct, "+json"), strings.HasSuffix(ct, "+xml"):
		return true
	default:
		return false
	}
}
