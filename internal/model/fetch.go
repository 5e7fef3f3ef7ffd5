// Package model defines the request and response types shared by every
// platform adapter.
package model

import (
	"net/http"
)

// Request is the inbound trigger. Its fields are kept for logging only;
// none of them influence the outbound call or the response.
type Request struct {
	Method string
	Path   string
	Header http.Header
}

// RequestFromHTTP captures the loggable parts of a net/http request.
func RequestFromHTTP(r *http.Request) *Request {
	return &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header,
	}
}

// Response is what an adapter hands back to its hosting runtime.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}
