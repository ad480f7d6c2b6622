package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/pkg/retry"
)

const maxErrorBody = 512

// errTransient marks failures worth retrying: transport errors and 5xx responses.
var errTransient = errs.New("transient upstream failure")

// IsTransient reports whether err came from a network failure or a remote 5xx.
func IsTransient(err error) bool {
	return errs.Is(err, errTransient)
}

// StatusError carries the status of a non-2xx upstream response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client is the shared transport for all upstream integrations.
type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	critical retry.Policy
	logger   *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	critical := retry.Critical(IsTransient)
	if cfg.RetryMaxAttempts > 0 {
		critical.MaxAttempts = cfg.RetryMaxAttempts
	}
	if cfg.RetryInitialInterval > 0 {
		critical.InitialInterval = cfg.RetryInitialInterval
	}
	if cfg.RetryMaxInterval > 0 {
		critical.MaxInterval = cfg.RetryMaxInterval
	}
	critical.Logger = logger

	return &Client{
		baseURL:  strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http:     &http.Client{},
		timeout:  cfg.Timeout,
		critical: critical,
		logger:   logger,
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) Critical() retry.Policy {
	return c.critical
}

// call performs one request and decodes a 2xx JSON body into out.
// A 404 is reported as notFound when it is set.
func (c *Client) call(ctx context.Context, method string, segments []string, params url.Values, out any, notFound error) error {
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "build upstream url"), errs.ErrExternalServiceUnavailable)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	path := "/" + strings.Join(segments, "/")

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "build upstream request"), errs.ErrExternalServiceUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		wrapped := errs.Wrapf(err, "%s %s", method, path)
		return errs.Mark(errs.Mark(wrapped, errTransient), errs.ErrExternalServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		statusErr := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       drainError(resp.Body),
		}
		switch {
		case resp.StatusCode == http.StatusNotFound && notFound != nil:
			return errs.Mark(statusErr, notFound)
		case resp.StatusCode >= 500:
			return errs.Mark(errs.Mark(statusErr, errTransient), errs.ErrExternalServiceUnavailable)
		default:
			return errs.Mark(statusErr, errs.ErrExternalServiceUnavailable)
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s %s", method, path), errs.ErrExternalServiceUnavailable)
	}
	return nil
}

func drainError(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	return strings.TrimSpace(string(data))
}

// StatusCode extracts the upstream status from err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errs.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

type successResponse struct {
	Success bool `json:"success"`
}
