// Package navotar is the HTTP client for the upstream rental API. It owns
// URL building, bearer-token attachment, multi-tenant query scoping and
// pagination parsing; every interesting computation (rates, taxes,
// availability, status transitions) happens on the other side of it.
package navotar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentaldesk-backend/internal/logger"
)

var ErrNotFound = errors.New("record not found")

// TokenSource yields the bearer token for the authenticated session
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed-token source, used by tests and tools
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// APIError carries the upstream status and message for a failed call
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error (status %d): %s", e.StatusCode, e.Message)
}

// Client talks to one tenant of the rental API
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	clientID string
	userID   string
	tokens   TokenSource
}

// New creates a client for the given tenant scope
func New(baseURL, clientID, userID string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}
	if clientID == "" {
		return nil, errors.New("client id is required")
	}
	return &Client{
		baseURL:  u,
		http:     &http.Client{Timeout: timeout},
		clientID: clientID,
		userID:   userID,
		tokens:   tokens,
	}, nil
}

// buildURL joins a path onto the base URL and appends the tenant scope
// (clientId/userId) plus the caller's query parameters
func (c *Client) buildURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path

	q := url.Values{}
	q.Set("clientId", c.clientID)
	if c.userID != "" {
		q.Set("userId", c.userID)
	}
	for key, vals := range query {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// do executes one request and decodes the JSON body into out. A payload
// that fails to decode is rejected, never coerced into a partial value.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	fullURL := c.buildURL(path, query)
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain bearer token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.UpstreamCall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.UpstreamResult(method, path, 0, err)
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.UpstreamResult(method, path, resp.StatusCode, ErrNotFound)
		return resp, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: msg}
		logger.UpstreamResult(method, path, resp.StatusCode, apiErr)
		return resp, apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.UpstreamResult(method, path, resp.StatusCode, err)
			return resp, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}

	logger.UpstreamResult(method, path, resp.StatusCode, nil)
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

// readErrorMessage pulls a human message out of an error body, which may be
// a JSON envelope or plain text
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var envelope struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Title != "" {
			return envelope.Title
		}
	}
	return strings.TrimSpace(string(data))
}
