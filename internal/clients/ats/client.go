package ats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/carehive/ats-admin/internal/metrics"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token attached to every request. An empty
// token sends the request unauthenticated; the server decides what to reject.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client is the facade over the ATS backend. One method per endpoint, one
// attempt per call, no retries: callers surface failures and let the user
// retry manually.
type Client struct {
	httpClient  HTTPClient
	baseURL     string
	tokens      TokenSource
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.send(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) send(ctx context.Context, method string, path string, query url.Values, body any) ([]byte, error) {

	var reader io.Reader
	contentType := ""

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	return c.sendRequest(ctx, method, requestURL, contentType, reader)
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, contentType string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsCounter.WithLabelValues(endpointLabel(req.URL.Path), "unreachable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestDuration.Observe(time.Since(start).Seconds())
	metrics.APIRequestsCounter.WithLabelValues(endpointLabel(req.URL.Path), statusClass(resp.StatusCode)).Inc()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func decodeInto[T any](body []byte) (T, error) {
	var value T
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&value); err != nil {
		return value, fmt.Errorf("error decoding JSON response: %w", err)
	}
	return value, nil
}

var pathIDs = regexp.MustCompile(`/\d+`)

// endpointLabel collapses numeric path segments so metric cardinality stays
// bounded.
func endpointLabel(path string) string {
	return pathIDs.ReplaceAllString(path, "/:id")
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
