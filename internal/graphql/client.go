// Package graphql provides the GraphQL transport and per-resource
// services over the backend's /graphql endpoint. Operation documents
// live as .graphql files embedded in the binary; responses are keyed by
// operation name and deserialized into statically known shapes.
package graphql

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
)

//go:embed operations/*.graphql
var operations embed.FS

// loadOperation returns the named operation document.
func loadOperation(name string) (string, error) {
	data, err := operations.ReadFile("operations/" + name + ".graphql")
	if err != nil {
		return "", srvErrors.NewOperationNotFoundError(name)
	}
	return string(data), nil
}

const defaultTimeout = 30 * time.Second

// Client posts named operations to a single GraphQL endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors,omitempty"`
}

// execute runs the named operation and deserializes the response value
// under responseKey into the caller's result shape. Any reported
// GraphQL error fails the call; a shape mismatch raises a
// ContractViolationError.
func execute[T any](ctx context.Context, c *Client, operation, responseKey string, variables map[string]any) (T, error) {
	var result T

	document, err := loadOperation(operation)
	if err != nil {
		return result, err
	}

	payload, err := json.Marshal(gqlRequest{Query: document, Variables: variables})
	if err != nil {
		return result, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	zap.S().Infof("--> GraphQL %s", operation)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.S().Errorf("GraphQL %s failed: %v", operation, err)
		return result, srvErrors.NewTransportFailure(http.MethodPost, c.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, srvErrors.NewTransportFailure(http.MethodPost, c.endpoint, err)
	}

	zap.S().Infof("<-- %d GraphQL %s", resp.StatusCode, operation)
	if resp.StatusCode != http.StatusOK {
		return result, srvErrors.NewTransportError(http.MethodPost, c.endpoint, resp.StatusCode, string(data))
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return result, srvErrors.NewContractViolationError(operation, "graphql envelope", err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return result, srvErrors.NewTransportError(http.MethodPost, c.endpoint, resp.StatusCode,
			"graphql errors: "+strings.Join(messages, "; "))
	}

	raw, ok := envelope.Data[responseKey]
	if !ok {
		return result, srvErrors.NewContractViolationError(operation, "graphql envelope",
			fmt.Errorf("key %q missing from response data", responseKey))
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, srvErrors.NewContractViolationError(operation, fmt.Sprintf("%T", result), err)
	}
	return result, nil
}
