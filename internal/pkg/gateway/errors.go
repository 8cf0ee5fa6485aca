package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// Kind classifies a failed remote call.
type Kind string

const (
	KindTimeout Kind = "TIMEOUT"
	KindNetwork Kind = "NETWORK_ERROR"
	KindServer  Kind = "SERVER_ERROR"
	KindClient  Kind = "CLIENT_ERROR"
)

var defaultMessages = map[Kind]string{
	KindTimeout: "Request timeout. The server is taking too long to respond.",
	KindNetwork: "Network error. Please check your connection.",
	KindServer:  "Server response error. Please refresh and try again.",
	KindClient:  "The request was rejected by the server.",
}

// Error is the single normalized error returned by Execute.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	// Payload is the backend's raw error body, when it sent one.
	Payload json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (status=%d): %s", e.Op, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the kind may be retried for idempotent operations.
func (e *Error) Retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindServer
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	gwErr, ok := AsError(err)
	return ok && gwErr.Kind == kind
}

func newError(op string, kind Kind, status int, payload []byte, cause error) *Error {
	e := &Error{
		Kind:    kind,
		Op:      op,
		Status:  status,
		Message: defaultMessages[kind],
		Err:     cause,
	}
	if len(payload) > 0 && json.Valid(payload) {
		e.Payload = json.RawMessage(payload)
		if msg := payloadMessage(payload); msg != "" {
			e.Message = msg
		}
	}
	return e
}

// payloadMessage pulls the human-readable text out of {"error": ...} or {"message": ...}.
func payloadMessage(payload []byte) string {
	var body struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	if len(body.Error) > 0 {
		var s string
		if err := json.Unmarshal(body.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return body.Message
}

func statusKind(status int) Kind {
	if status >= 500 {
		return KindServer
	}
	return KindClient
}

func classifyRequestError(ctx context.Context, op string, err error) *Error {
	if isTimeoutError(ctx, err) {
		return newError(op, KindTimeout, 0, nil, err)
	}
	if isNetworkError(err) {
		return newError(op, KindNetwork, 0, nil, err)
	}
	return newError(op, KindNetwork, 0, nil, fmt.Errorf("request error: %w", err))
}

// classifyBodyError handles a response that arrived but was cut short or malformed.
// Those are counted as server failures so reads can retry them.
func classifyBodyError(ctx context.Context, op string, status int, err error) *Error {
	if isTimeoutError(ctx, err) {
		return newError(op, KindTimeout, status, nil, err)
	}
	return newError(op, KindServer, status, nil, err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
