// Package lambda adapts the fetch core to the AWS Lambda HTTP event shapes.
package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"serverless-fetch-go/internal/model"
	"serverless-fetch-go/internal/service"
)

// contentType is the header value Lambda responses always carry.
const contentType = "text/html"

// ProxyHandler is the aws-lambda-go signature for API Gateway REST proxy events.
type ProxyHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// FunctionURLHandler is the aws-lambda-go signature for function URL and
// HTTP API (payload v2) events.
type FunctionURLHandler func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// New wraps h for API Gateway proxy events. Failures are returned as the
// opaque error so the Lambda runtime produces its own error response.
func New(h service.Handler) ProxyHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := h.Handle(ctx, &model.Request{
			Method: event.HTTPMethod,
			Path:   event.Path,
			Header: toHeader(event.Headers),
		})
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}

		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    map[string]string{"content-type": contentType},
			Body:       resp.Body,
		}, nil
	}
}

// NewFunctionURL wraps h for function URL events.
func NewFunctionURL(h service.Handler) FunctionURLHandler {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		resp, err := h.Handle(ctx, &model.Request{
			Method: event.RequestContext.HTTP.Method,
			Path:   event.RawPath,
			Header: toHeader(event.Headers),
		})
		if err != nil {
			return events.LambdaFunctionURLResponse{}, err
		}

		return events.LambdaFunctionURLResponse{
			StatusCode: resp.StatusCode,
			Headers:    map[string]string{"content-type": contentType},
			Body:       resp.Body,
		}, nil
	}
}

func toHeader(m map[string]string) http.Header {
	h := make(http.Header, len(m))
	for k, v := range m {
		h.Set(k, v)
	}
	return h
}
