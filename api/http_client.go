// api/http_client.go
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Response is a fully read HTTP response. The body is kept verbatim.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is below 400, i.e. neither a client nor a
// server error.
func (r *Response) OK() bool {
	return r.StatusCode < http.StatusBadRequest
}

// NewHTTPClient creates a new instance of HTTPClient. A zero timeout leaves
// the call bounded only by the transport.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes an HTTP request to the API and reads the whole response body.
// Non-success statuses are not treated as errors here; see Get.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, params url.Values, headers map[string]string) (*Response, error) {
	u, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Header:     res.Header,
		Body:       resBody,
	}, nil
}

// Get issues a GET and turns a non-success status into a
// *RemoteRequestFailedError carrying the response body.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	res, err := c.Request(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, &RemoteRequestFailedError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       res.Body,
		}
	}
	return res, nil
}
