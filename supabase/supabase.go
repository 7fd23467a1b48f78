// Package supabase inserts rows into a hosted Supabase table through its
// PostgREST endpoint.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/venra/site/lead"
)

const backend = "supabase"

// Config holds the project URL and the public (anon) API key.
type Config struct {
	URL     string
	APIKey  string
	Table   string
	Timeout time.Duration
}

// Client is a lead.Store for a Supabase table.
type Client struct {
	http     *fasthttp.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// apiError is the PostgREST error body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// New creates a client. A zero Timeout defaults to ten seconds.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("missing Supabase configuration")
	}
	if cfg.Table == "" {
		cfg.Table = "leads"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		http: &fasthttp.Client{
			Name:         "venra-site",
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		endpoint: strings.TrimRight(cfg.URL, "/") + "/rest/v1/" + cfg.Table,
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout,
	}, nil
}

// Insert writes one row. It makes exactly one request.
func (c *Client) Insert(ctx context.Context, l lead.Lead) error {
	if err := ctx.Err(); err != nil {
		return &lead.StoreError{Backend: backend, Message: "request cancelled", Err: err}
	}

	body, err := json.Marshal([]lead.Lead{l})
	if err != nil {
		return &lead.StoreError{Backend: backend, Message: "encode lead", Err: err}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Prefer", "return=minimal")
	c.authorize(req)
	req.SetBody(body)

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return &lead.StoreError{Backend: backend, Message: "insert request failed", Err: err}
	}

	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return nil
	}
	return decodeError(status, resp.Body())
}

// Ping checks that the table endpoint answers with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint + "?select=name&limit=0")
	req.Header.SetMethod(fasthttp.MethodHead)
	c.authorize(req)

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return &lead.StoreError{Backend: backend, Message: "ping failed", Err: err}
	}
	if resp.StatusCode() >= 500 {
		return &lead.StoreError{Backend: backend, Status: resp.StatusCode(), Message: "ping failed"}
	}
	return nil
}

func (c *Client) authorize(req *fasthttp.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.apiKey)
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}

func decodeError(status int, body []byte) error {
	storeErr := &lead.StoreError{Backend: backend, Status: status, Message: "insert rejected"}

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		storeErr.Code = apiErr.Code
		storeErr.Message = apiErr.Message
		if apiErr.Details != "" {
			storeErr.Message += ": " + apiErr.Details
		}
	}
	return storeErr
}
