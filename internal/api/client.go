// Package api is the HTTP client for the EventFinder backend. Every
// call takes a context; failures come back as wrapped errors carrying
// the status code and response body where one was received.
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to one backend origin.
type Client struct {
	baseURL string
	hc      *http.Client

	mu     sync.Mutex
	images map[int][]byte
}

// New creates a client for the given origin, e.g. "http://localhost:8080".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		images:  make(map[int][]byte),
	}
}

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// checkStatus drains the body into a StatusError when the response code
// is outside ok. Callers pass the acceptable check.
func statusError(resp *http.Response, method, path string) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}
