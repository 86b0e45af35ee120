package siteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/requestid"
)

const (
	updateBatchPath = "/api/website-state/update-content-batch"
	siteLookupPath  = "/api/public/site"

	// maxErrorBody bounds how much of a failed response is kept in StatusError.
	maxErrorBody = 4 << 10
)

// Client talks to the website API.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	logger *slog.Logger
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: requestid.NewTransport(nil),
		},
		tokens: StaticToken(""),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig creates a client from env configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{WithTokenSource(cfg.TokenSource()), WithTimeout(cfg.Timeout)}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// UpdateContentBatch submits a batch of content updates and asks the server
// to recompile the site.
func (c *Client) UpdateContentBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if req.Updates == nil {
		req.Updates = []Update{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("siteapi: encode batch: %w", err)
	}

	var resp BatchResponse
	if err := c.do(ctx, http.MethodPost, updateBatchPath, url.Values{"compile": {"true"}}, body, &resp); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "content batch saved",
		logger.Count("updates", len(req.Updates)),
		slog.Bool("compiled", resp.Compiled != nil),
	)
	return &resp, nil
}

// LookupSite resolves a public slug to the site identifier.
func (c *Client) LookupSite(ctx context.Context, slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		return "", ErrEmptySlug
	}

	var resp siteLookupResponse
	err := c.do(ctx, http.MethodGet, siteLookupPath, url.Values{"slug": {slug}}, nil, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return "", errors.Join(ErrSiteNotFound, err)
		}
		return "", err
	}
	if resp.ArtistID == "" {
		return "", ErrSiteNotFound
	}
	return resp.ArtistID, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrInvalidResponse, err)
	}
	return nil
}
