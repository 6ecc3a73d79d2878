// Package gateway is the storefront's only persistence path: a generic
// client for the collection API, which exposes CRUD over named record sets
// with equality filtering. The backing store behind that API is
// authoritative for every entity; the storefront holds transient copies
// only for the duration of a request.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound is returned when the collection API answers 404 for a
	// record id.
	ErrNotFound = errors.New("record not found")
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// List reads every record of a collection into out.
func (c *Client) List(ctx context.Context, collection string, out any) error {
	return c.do(ctx, http.MethodGet, collection, "", nil, out)
}

// Get reads a single record by id into out.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, collection+"/"+url.PathEscape(id), "", nil, out)
}

// Query reads all records whose field equals value into out.
func (c *Client) Query(ctx context.Context, collection, field, value string, out any) error {
	q := url.Values{field: []string{value}}.Encode()

	return c.do(ctx, http.MethodGet, collection, q, nil, out)
}

// Create posts body to a collection; the created record, id included, is
// decoded into out when out is non-nil.
func (c *Client) Create(ctx context.Context, collection string, body, out any) error {
	return c.do(ctx, http.MethodPost, collection, "", body, out)
}

// Patch applies a partial update to a record. Only the top-level fields
// present in partial change.
func (c *Client) Patch(ctx context.Context, collection, id string, partial, out any) error {
	return c.do(ctx, http.MethodPatch, collection+"/"+url.PathEscape(id), "", partial, out)
}

// Delete removes a record. Deleting an absent id returns ErrNotFound.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, collection+"/"+url.PathEscape(id), "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, query string, body, out any) error {
	u := c.baseURL + "/" + path
	if query != "" {
		u += "?" + query
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body -> %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s -> %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s -> %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s -> unexpected status %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response -> %w", method, path, err)
	}

	return nil
}
