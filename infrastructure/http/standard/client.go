// ABOUTME: Standard HTTP client implementation used for proxy fetches and REST model calls
// ABOUTME: Single attempt per request; callers bound latency through the context

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"gistfm-api/core/interfaces"
)

const userAgent = "GistFM/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client  *http.Client
	headers map[string]string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves requests bounded only by their context.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{},
	}
}

// WithHeader returns the client with a header added to every request
func (c *StandardHTTPClient) WithHeader(key, value string) *StandardHTTPClient {
	c.headers[key] = value
	return c
}

// WithTransport replaces the round tripper used for every request
func (c *StandardHTTPClient) WithTransport(rt http.RoundTripper) *StandardHTTPClient {
	c.client.Transport = rt
	return c
}

// Timeout reports the client-wide request timeout; zero means none
func (c *StandardHTTPClient) Timeout() time.Duration {
	return c.client.Timeout
}

// Get performs an HTTP GET request. Failed requests are not retried.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// Post performs an HTTP POST request with a JSON body
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.PostWithHeaders(ctx, url, body, nil)
}

// PostWithHeaders performs a JSON POST with extra headers for this request only.
// Credentials sent this way stay out of the URL and therefore out of transport errors.
func (c *StandardHTTPClient) PostWithHeaders(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req)
}

func (c *StandardHTTPClient) do(req *http.Request) (interfaces.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
