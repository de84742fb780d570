// Package client provides the REST transport machinery and the
// per-resource API clients built on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/coffeehouse/e2e/internal/models"
	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client is the generic REST transport: it serializes a typed payload,
// performs the call, and reports any non-success outcome as an error.
// A bearer token, once attached, applies to every subsequent request
// from this instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithToken attaches a bearer token at construction time.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client, useful for test
// customization.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches the bearer token for all subsequent requests. The
// token is never inferred; it is set here or at construction only.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do performs one HTTP exchange and returns the raw response body.
// Non-success statuses and network failures both surface as
// TransportError; nothing is retried or swallowed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	zap.S().Infof("--> %s %s", method, target)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.S().Errorf("%s %s failed: %v", method, target, err)
		return nil, srvErrors.NewTransportFailure(method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, srvErrors.NewTransportFailure(method, target, err)
	}

	zap.S().Infof("<-- %d %s %s", resp.StatusCode, method, target)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, srvErrors.NewTransportError(method, target, resp.StatusCode, string(data))
	}

	return data, nil
}

// call performs the exchange and deserializes the response into the
// statically known result shape. A shape mismatch raises a
// ContractViolationError, distinct from transport failures.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var result T

	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return result, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, srvErrors.NewContractViolationError(
			fmt.Sprintf("%s %s", method, path), fmt.Sprintf("%T", result), err)
	}
	return result, nil
}

// callRaw performs the exchange and returns the opaque response bytes,
// for endpoints that do not answer with a structured payload.
func callRaw(ctx context.Context, c *Client, method, path string, query url.Values, body any) ([]byte, error) {
	return c.do(ctx, method, path, query, body)
}

func pageQuery(params *models.PageParams) url.Values {
	if params == nil {
		return nil
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	return query
}
