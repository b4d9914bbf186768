// Package awsutil replays canned AWS request/response cycles over http.
package awsutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
)

type Request struct {
	Method     string
	RequestURI string
	Operation  string
	Body       string
}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

type Cycle struct {
	Request  Request
	Response Response
}

// Handler serves its cycles in order. A request that does not match the
// next cycle is answered with a 400 and recorded in Errors.
type Handler struct {
	Errors []error

	cycles []Cycle
	lock   sync.Mutex
}

func NewHandler(cycles []Cycle) *Handler {
	return &Handler{cycles: cycles}
}

// Remaining is the number of cycles not yet served
func (h *Handler) Remaining() int {
	h.lock.Lock()
	defer h.lock.Unlock()

	return len(h.cycles)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, err)
		return
	}

	if len(h.cycles) == 0 {
		h.fail(w, fmt.Errorf("unexpected request: %s %s", r.Method, r.RequestURI))
		return
	}

	c := h.cycles[0]
	h.cycles = h.cycles[1:]

	if err := c.Request.match(r, body); err != nil {
		h.fail(w, err)
		return
	}

	for k, v := range c.Response.Headers {
		w.Header().Set(k, v)
	}

	if c.Response.StatusCode == 0 {
		c.Response.StatusCode = 200
	}

	w.WriteHeader(c.Response.StatusCode)
	w.Write([]byte(c.Response.Body))
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.Errors = append(h.Errors, err)

	data, _ := json.Marshal(map[string]string{
		"__type":  "CycleMismatch",
		"message": err.Error(),
	})

	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(400)
	w.Write(data)
}

func (req Request) match(r *http.Request, body []byte) error {
	if req.Method != "" && req.Method != r.Method {
		return fmt.Errorf("expected method %s, got %s", req.Method, r.Method)
	}

	if req.RequestURI != "" && req.RequestURI != r.RequestURI {
		return fmt.Errorf("expected uri %s, got %s", req.RequestURI, r.RequestURI)
	}

	if req.Operation != "" && req.Operation != r.Header.Get("X-Amz-Target") {
		return fmt.Errorf("expected operation %s, got %s", req.Operation, r.Header.Get("X-Amz-Target"))
	}

	if req.Body != "" && !bodyEqual(req.Body, body) {
		return fmt.Errorf("unexpected body for %s: %s", req.RequestURI, string(body))
	}

	return nil
}

// bodyEqual compares json bodies structurally and anything else verbatim
func bodyEqual(expected string, actual []byte) bool {
	var e, a interface{}

	if json.Unmarshal([]byte(expected), &e) == nil && json.Unmarshal(actual, &a) == nil {
		return reflect.DeepEqual(e, a)
	}

	return strings.TrimSpace(expected) == string(bytes.TrimSpace(actual))
}
