package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/assogestion/assogestion/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	inner := slog.NewJSONHandler(buf, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		// Drop the timestamp so output is deterministic.
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}})
	return slog.New(logging.NewRedactingHandler(inner))
}

func TestRedactingHandler_MasksSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("user login",
		slog.String("username", "claire"),
		slog.String("password", "hunter2"),
		slog.String("refresh_token", "abc123"),
		slog.String("Authorization", "Bearer xyz"),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "claire", entry["username"])
	assert.Equal(t, "[REDACTED]", entry["password"])
	assert.Equal(t, "[REDACTED]", entry["refresh_token"])
	assert.Equal(t, "[REDACTED]", entry["Authorization"])
	assert.NotContains(t, buf.String(), "hunter2")
	assert.NotContains(t, buf.String(), "abc123")
}

func TestRedactingHandler_MatchesKeyFragments(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("config loaded",
		slog.String("smtp_password", "secret-pass"),
		slog.String("posthog_api_key", "ph-key"),
		slog.String("jwt_secret", "sign-me"),
		slog.String("db_host", "localhost"),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "[REDACTED]", entry["smtp_password"])
	assert.Equal(t, "[REDACTED]", entry["posthog_api_key"])
	assert.Equal(t, "[REDACTED]", entry["jwt_secret"])
	assert.Equal(t, "localhost", entry["db_host"])
}

func TestRedactingHandler_RecursesIntoGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("outbound call",
		slog.Group("request",
			slog.String("url", "https://api.example.org"),
			slog.String("api_key", "k-123"),
		),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	request, ok := entry["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://api.example.org", request["url"])
	assert.Equal(t, "[REDACTED]", request["api_key"])
}

func TestRedactingHandler_WithAttrsIsRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf).With(slog.String("session_token", "tok-999"))

	logger.Info("background job started")

	assert.NotContains(t, buf.String(), "tok-999")
	assert.Contains(t, buf.String(), "[REDACTED]")
}
