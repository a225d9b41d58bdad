package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry decodes the last JSON line written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNewLogger_ServerEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("go-prompt-tracker-server")
	l.Logger = l.Output(&buf)

	l.Debug().Str("user_id", "alice").Msg("prompt saved")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "go-prompt-tracker-server", entry["role"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "prompt saved", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_ServerEntryShape")
}

func TestNewConsoleLogger_ClientOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("go-prompt-tracker-client")
	l.Logger = l.Output(zerolog.ConsoleWriter{Out: &buf, NoColor: true})

	l.Debug().Msg("request sent")
	assert.Empty(t, buf.String(), "debug lines are hidden from the user")

	l.Warn().Str("command", "submit").Msg("server is slow")

	out := buf.String()
	assert.Contains(t, out, "server is slow")
	assert.Contains(t, out, "command=submit")
	assert.Contains(t, out, "role=go-prompt-tracker-client")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))), "console output is not JSON")
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("storage unavailable")

	assert.Empty(t, buf.String())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "go-prompt-tracker-server").Logger()}

	child := parent.WithTraceID("0192f1c4-trace")
	child.Info().Msg("request handled")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "0192f1c4-trace", entry[TraceIDField])
	assert.Equal(t, "go-prompt-tracker-server", entry["role"])

	parent.Info().Msg("startup")
	assert.NotContains(t, lastEntry(t, &buf), TraceIDField, "parent must stay untagged")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		base := &Logger{zerolog.New(&buf)}
		ctx := base.WithTraceID("call-7").WithContext(context.Background())

		FromContext(ctx).Info().Msg("health check")

		assert.Equal(t, "call-7", lastEntry(t, &buf)[TraceIDField])
	})

	t.Run("bare context still yields a logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zerolog.New(&buf)}

	req := httptest.NewRequest(http.MethodPost, "/api/prompt", nil)
	req = req.WithContext(base.WithTraceID("req-1").WithContext(req.Context()))

	FromRequest(req).Info().Msg("prompt created")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "req-1", entry[TraceIDField])
	assert.Equal(t, "prompt created", entry["message"])
}
