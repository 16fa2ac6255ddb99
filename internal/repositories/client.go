package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"
)

// TokenSource yields the bearer token to attach, or "" for none
type TokenSource func() string

// Client performs single-shot JSON calls against the backend base URL.
// There is no retry and no client-side timeout; only ctx can abort a call.
type Client struct {
	http    *client.Client
	baseURL string
	token   TokenSource
	logger  *zap.Logger
}

type ClientOption func(*Client)

// WithTokenSource attaches "Authorization: Bearer <token>" whenever the source yields a token.
func WithTokenSource(src TokenSource) ClientOption {
	return func(c *Client) { c.token = src }
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		http:    client.New(),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches path and returns the raw 2xx body
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, fiber.MethodGet, path, nil)
}

// Post sends payload as JSON to path and returns the raw 2xx body
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, fiber.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	url := c.baseURL + path

	req := c.http.R().SetContext(ctx)
	if c.token != nil {
		if token := c.token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	if payload != nil {
		req.SetJSON(payload)
	}

	var (
		resp *client.Response
		err  error
	)
	switch method {
	case fiber.MethodPost:
		resp, err = req.Post(url)
	default:
		resp, err = req.Get(url)
	}
	if err != nil {
		c.logger.Debug("backend call failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Close()

	// the body buffer is pooled with the response
	body := bytes.Clone(resp.Body())
	status := resp.StatusCode()
	c.logger.Debug("backend call", zap.String("method", method), zap.String("url", url), zap.Int("status", status))

	if status < 200 || status > 299 {
		return nil, newAPIError(status, body)
	}
	return body, nil
}

// FetchCollection lists the records at path. The backend may answer with a
// bare JSON array or with {"data": [...]}; both are accepted.
func FetchCollection[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeCollection[T](body)
}

// CreateRecord posts payload to path and decodes the created record, bare or wrapped in "data".
func CreateRecord[T any](ctx context.Context, c *Client, path string, payload T) (T, error) {
	var created T
	body, err := c.Post(ctx, path, payload)
	if err != nil {
		return created, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return payload, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if body[0] == '{' && json.Unmarshal(body, &envelope) == nil && len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		body = envelope.Data
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return created, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return created, nil
}

func decodeCollection[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}, nil
	}

	if body[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		body = bytes.TrimSpace(envelope.Data)
		if len(body) == 0 || bytes.Equal(body, []byte("null")) {
			return []T{}, nil
		}
	}

	records := []T{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return records, nil
}
