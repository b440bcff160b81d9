// Package api talks to the restaurant REST API. Every response body is
// validated against the struct tags of the type it decodes into.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diewo77/smart-order/internal/schema"
)

// Credentials supplies the Authorization header value; "" sends none.
type Credentials interface {
	Authorization() string
}

// Client is safe for concurrent use. WithCredentials returns a copy, so a
// shared base client can be bound to each request's session.
type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
}

func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base url %q", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}, nil
}

// WithCredentials returns a copy of c that authenticates with creds.
func (c *Client) WithCredentials(creds Credentials) *Client {
	cp := *c
	cp.creds = creds
	return &cp
}

func (c *Client) send(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if v := c.creds.Authorization(); v != "" {
			req.Header.Set("Authorization", v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(method, path, resp.StatusCode, data)
	}
	return data, nil
}

// List GETs a collection.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	items, err := schema.DecodeList[T](data)
	if err != nil {
		return nil, &DecodeError{Method: http.MethodGet, Path: path, Err: err}
	}
	return items, nil
}

// ListOrEmpty is List for collections where the API answers 400 when it
// has nothing to return.
func ListOrEmpty[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	items, err := List[T](ctx, c, path)
	if IsStatus(err, http.StatusBadRequest) {
		return []T{}, nil
	}
	return items, err
}

// Get GETs a single document.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	data, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return zero, err
	}
	v, err := schema.Decode[T](data)
	if err != nil {
		return zero, &DecodeError{Method: http.MethodGet, Path: path, Err: err}
	}
	return v, nil
}

// Post sends payload and decodes the answer as T.
func Post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	data, err := c.send(ctx, http.MethodPost, path, payload)
	if err != nil {
		return zero, err
	}
	v, err := schema.Decode[T](data)
	if err != nil {
		return zero, &DecodeError{Method: http.MethodPost, Path: path, Err: err}
	}
	return v, nil
}

// Create POSTs payload and returns the created id when the answer has one.
// The body is otherwise ignored.
func Create(ctx context.Context, c *Client, path string, payload any) (string, error) {
	data, err := c.send(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}
	var created struct {
		ID json.RawMessage `json:"id"`
	}
	if json.Unmarshal(data, &created) != nil || len(created.ID) == 0 {
		return "", nil
	}
	var id string
	if json.Unmarshal(created.ID, &id) == nil {
		return id, nil
	}
	// numeric ids
	return string(created.ID), nil
}

// Delete sends DELETE path/id.
func Delete(ctx context.Context, c *Client, path, id string) error {
	_, err := c.send(ctx, http.MethodDelete, path+"/"+url.PathEscape(id), nil)
	return err
}
