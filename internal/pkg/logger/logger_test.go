package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithRequestIDTagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := WithContext(context.Background(), &base)

	ctx = WithRequestID(ctx, "req-1")
	LogInfo(ctx, "hello", "user_id", 7, 42, "skipped")

	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("expected request id req-1, got %q", got)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != "req-1" || entry["message"] != "hello" || entry["user_id"] != float64(7) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected global logger")
	}
	if RequestID(context.Background()) != "" {
		t.Fatalf("expected empty request id")
	}
}
