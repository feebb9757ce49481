package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"netcores-mcp/internal/logger"
)

var log = logger.Named("client")

const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = time.Second
)

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

// Client issues retried HTTP calls against the netcores analysis API.
// Configuration is fixed at construction; independent calls are safe to run
// concurrently.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
}

func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return nil, errors.New("missing base URL")
	}
	base = strings.TrimRight(base, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	return &Client{
		baseURL:     base,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one logical API operation with bounded retry and exponential
// backoff (retryDelay * 2^(attempt-1) between attempts). Non-retryable
// failures surface after the first attempt.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = data
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		data, err := c.attempt(ctx, method, target, payload)
		if err == nil {
			return data, nil
		}
		lastErr = err
		log.Warnf("request failed method=%s path=%s attempt=%d/%d err=%v", method, path, attempt, c.maxAttempts, err)
		if !retryable(err) || attempt == c.maxAttempts {
			break
		}
		delay := c.retryDelay << (attempt - 1)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, &ConnectionError{Err: ctx.Err()}
		}
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	if resp.StatusCode >= 400 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, data),
		}
	}
	return data, nil
}

// errorMessage prefers the structured error body ({"detail": ...} or
// {"error"/"message": ...}) over the bare status text.
func errorMessage(status int, body []byte) string {
	var decoded struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		for _, msg := range []string{decoded.Detail, decoded.Error, decoded.Message} {
			if strings.TrimSpace(msg) != "" {
				return strings.TrimSpace(msg)
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.call(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := c.call(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// decode unmarshals into a fresh value and only then assigns, so a malformed
// payload never leaves out partially filled.
func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func ipVersionQuery(ipVersion int) url.Values {
	q := url.Values{}
	q.Set("ip_version", strconv.Itoa(ipVersion))
	return q
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.get(ctx, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Summary(ctx context.Context, ipVersion int) (*Summary, error) {
	var out Summary
	if err := c.get(ctx, "/api/summary", ipVersionQuery(ipVersion), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ASNTrend(ctx context.Context, asn, ipVersion int, startDate, endDate string) (*TrendSeries, error) {
	q := ipVersionQuery(ipVersion)
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	var out TrendSeries
	if err := c.get(ctx, "/api/trends/"+strconv.Itoa(asn), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompareASNs(ctx context.Context, asns []int, ipVersion int, startDate, endDate string) (*CompareResult, error) {
	body := map[string]any{
		"ids":        asns,
		"ip_version": ipVersion,
	}
	if startDate != "" {
		body["start_date"] = startDate
	}
	if endDate != "" {
		body["end_date"] = endDate
	}
	var out CompareResult
	if err := c.post(ctx, "/api/trends", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Snapshots(ctx context.Context, ipVersion int) (*SnapshotList, error) {
	var out SnapshotList
	if err := c.get(ctx, "/api/snapshots", ipVersionQuery(ipVersion), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, ipVersions []int) (*RefreshResult, error) {
	body := map[string]any{"ip_versions": ipVersions}
	var out RefreshResult
	if err := c.post(ctx, "/api/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SchedulerStatus(ctx context.Context) (*SchedulerStatus, error) {
	var out SchedulerStatus
	if err := c.get(ctx, "/api/scheduler/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TriggerUpdate(ctx context.Context) (*UpdateResult, error) {
	var out UpdateResult
	if err := c.post(ctx, "/api/scheduler/update", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestConnection probes /api/health and reports the outcome without ever
// returning an error; unreachable endpoints classify the same way every time.
func (c *Client) TestConnection(ctx context.Context) ProbeResult {
	health, err := c.Health(ctx)
	if err != nil {
		return ProbeResult{OK: false, Reason: err.Error()}
	}
	status := health.Status
	if status == "" {
		status = "unknown"
	}
	version := health.Version
	if version == "" {
		version = "unknown"
	}
	return ProbeResult{OK: true, Status: status, Version: version}
}
