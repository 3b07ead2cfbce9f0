package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 4 << 20

// Config holds API client settings
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	UserAgent    string
	MaxIdleConns int
}

// Client calls the platform REST API on behalf of the session on each request context
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	validate  *validator.Validate
	metrics   core.MetricsRecorder
	logger    core.Logger
}

// New creates a client for cfg.BaseURL
func New(cfg Config, metrics core.MetricsRecorder, logger core.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host are required", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.MaxIdleConns
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConns
	}

	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout, Transport: transport},
		userAgent: cfg.UserAgent,
		validate:  validator.New(),
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// call describes one API request. route is the path template used for metrics.
type call struct {
	method string
	route  string
	path   string
	params url.Values
	body   any
}

func (c *Client) do(ctx context.Context, req call, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, req, out)

	outcome := "ok"
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		outcome = string(apiErr.Kind)
	} else if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstream(req.method+" "+req.route, outcome, time.Since(start))

	if err != nil {
		fields := map[string]any{"method": req.method, "route": req.route, "outcome": outcome}
		if apiErr != nil {
			fields = apiErr.LogFields()
		}
		c.logger.Warn("Platform API call failed", fields)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, req call, out any) error {
	target := c.baseURL.JoinPath(req.path)
	if len(req.params) > 0 {
		target.RawQuery = req.params.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.route, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", req.route, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if token := entity.TokenFromContext(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if id := core.RequestIDFromContext(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &errs.APIError{Kind: transportKind(err), Method: req.method, Path: req.path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &errs.APIError{Kind: transportKind(err), StatusCode: resp.StatusCode, Method: req.method, Path: req.path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewAPIError(req.method, req.path, resp.StatusCode, ServerMessage(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return c.malformed(req, resp.StatusCode, err)
	}
	if err := c.validate.Struct(out); err != nil {
		return c.malformed(req, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) malformed(req call, status int, err error) error {
	return &errs.APIError{
		Kind:       errs.KindMalformed,
		StatusCode: status,
		Method:     req.method,
		Path:       req.path,
		Err:        fmt.Errorf("%w: %v", errs.ErrMalformedResponse, err),
	}
}

// ServerMessage extracts the human-readable message from an error payload,
// preferring "message" and falling back to "error"
func ServerMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "error", "error.message"} {
		r := gjson.GetBytes(body, path)
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}

func transportKind(err error) errs.Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.KindTimeout
	}
	return errs.KindNetwork
}
