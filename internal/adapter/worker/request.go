// Package worker adapts the fetch core to the edge worker fetch event,
// whose entry shape is (request, env, ctx) returning a Promise<Response>.
package worker

import (
	"net/http"
	"net/url"

	"serverless-fetch-go/internal/model"
)

// ExportName is the global the JavaScript shim calls for each fetch event.
const ExportName = "goFetch"

// newRequest builds the loggable inbound request from the JS Request's
// method and URL. An unparsable URL leaves Path empty; it is never used
// for anything but logging.
func newRequest(method, rawURL string) *model.Request {
	req := &model.Request{Method: method, Header: http.Header{}}
	if u, err := url.Parse(rawURL); err == nil {
		req.Path = u.Path
	}
	return req
}

// responseInit returns the status and flattened headers passed to the
// JS Response constructor.
func responseInit(resp *model.Response) (int, map[string]any) {
	headers := make(map[string]any, len(resp.Header))
	for key, vals := range resp.Header {
		if len(vals) > 0 {
			headers[key] = vals[0]
		}
	}
	return resp.StatusCode, headers
}
