// Package gateway executes calls against the salon backend with uniform error
// classification and bounded retry for idempotent operations.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonbook/salon-web/internal/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Operation is one named remote call.
type Operation struct {
	Name   string
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	// Idempotent operations may be retried; writes must leave this false.
	Idempotent bool
}

// Read builds an idempotent GET operation.
func Read(name, path string) Operation {
	return Operation{Name: name, Method: http.MethodGet, Path: path, Idempotent: true}
}

// Write builds a state-changing operation that is attempted exactly once.
func Write(name, method, path string, body interface{}) Operation {
	return Operation{Name: name, Method: method, Path: path, Body: body}
}

// Validator is implemented by response types that can tell a complete body
// from one that decoded without error but lacks required fields.
type Validator interface {
	Validate() error
}

// Config configures a Gateway.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Retry     RetryPolicy
}

// Gateway wraps outbound HTTP calls to the backend.
type Gateway struct {
	baseURL string
	ua      string
	http    *http.Client
	retry   RetryPolicy
}

// New creates a new Gateway.
func New(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	retry := cfg.Retry.capped()
	if retry.MaxRetries != cfg.Retry.MaxRetries {
		logger.LogWarn(context.Background(), "Backend retry count out of range, clamped",
			"requested", cfg.Retry.MaxRetries, "used", retry.MaxRetries)
	}

	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		ua:      cfg.UserAgent,
		retry:   retry,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Execute performs op and decodes a JSON response into out (which may be nil).
// Every failure is returned as a *Error.
func (g *Gateway) Execute(ctx context.Context, op Operation, out interface{}) error {
	if g == nil || g.http == nil {
		return newError(op.Name, KindNetwork, 0, nil, fmt.Errorf("gateway is nil"))
	}

	var payload []byte
	if op.Body != nil {
		var err error
		payload, err = json.Marshal(op.Body)
		if err != nil {
			return newError(op.Name, KindClient, 0, nil, fmt.Errorf("encode body: %w", err))
		}
	}

	if logger.RequestID(ctx) == "" {
		ctx = logger.WithRequestID(ctx, uuid.New().String())
	}

	for attempt := 0; ; attempt++ {
		err := g.do(ctx, op, payload, out)
		if err == nil {
			return nil
		}
		if !g.retry.ShouldRetry(op.Idempotent, err, attempt) {
			return err
		}

		delay := g.retry.Backoff(attempt)
		logger.FromContext(ctx).Warn().
			Str("op", op.Name).
			Str("kind", string(err.Kind)).
			Int("attempt", attempt+1).
			Dur("backoff", delay).
			Msg("Retrying backend call")

		if sleepErr := sleepContext(ctx, delay); sleepErr != nil {
			return err
		}
	}
}

func (g *Gateway) do(ctx context.Context, op Operation, payload []byte, out interface{}) *Error {
	target := g.baseURL + op.Path
	if len(op.Query) > 0 {
		target += "?" + op.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, target, body)
	if err != nil {
		return newError(op.Name, KindClient, 0, nil, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.ua != "" {
		req.Header.Set("User-Agent", g.ua)
	}
	req.Header.Set("X-Request-ID", logger.RequestID(ctx))

	start := time.Now()
	resp, err := g.http.Do(req)
	if err != nil {
		gwErr := classifyRequestError(ctx, op.Name, err)
		g.logAttempt(ctx, op, 0, start, gwErr)
		return gwErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		gwErr := classifyBodyError(ctx, op.Name, resp.StatusCode, err)
		g.logAttempt(ctx, op, resp.StatusCode, start, gwErr)
		return gwErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := newError(op.Name, statusKind(resp.StatusCode), resp.StatusCode, data,
			fmt.Errorf("http status %d", resp.StatusCode))
		g.logAttempt(ctx, op, resp.StatusCode, start, gwErr)
		return gwErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if len(bytes.TrimSpace(data)) == 0 {
			gwErr := classifyBodyError(ctx, op.Name, resp.StatusCode, io.ErrUnexpectedEOF)
			g.logAttempt(ctx, op, resp.StatusCode, start, gwErr)
			return gwErr
		}
		if err := json.Unmarshal(data, out); err != nil {
			gwErr := classifyBodyError(ctx, op.Name, resp.StatusCode, fmt.Errorf("decode response: %w", err))
			g.logAttempt(ctx, op, resp.StatusCode, start, gwErr)
			return gwErr
		}
		if v, ok := out.(Validator); ok {
			if err := v.Validate(); err != nil {
				gwErr := classifyBodyError(ctx, op.Name, resp.StatusCode, fmt.Errorf("incomplete response: %w", err))
				g.logAttempt(ctx, op, resp.StatusCode, start, gwErr)
				return gwErr
			}
		}
	}

	g.logAttempt(ctx, op, resp.StatusCode, start, nil)
	return nil
}

func (g *Gateway) logAttempt(ctx context.Context, op Operation, status int, start time.Time, err *Error) {
	event := logger.FromContext(ctx).Debug()
	if err != nil {
		event = event.Str("kind", string(err.Kind)).Err(err.Err)
	}
	event.
		Str("op", op.Name).
		Str("method", op.Method).
		Str("path", op.Path).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("Backend call")
}
