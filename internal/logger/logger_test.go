package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/internal/logger"
)

func TestSetup_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.Setup(&buf, "debug", "json")
	logger.WithComponent("repl").Debug("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "repl", rec["component"])
	require.EqualValues(t, 3, rec["n"])
}

func TestSetup_LevelFilter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := logger.Setup(&buf, "warn", "text")
	l.Info("quiet")
	require.Empty(t, buf.String())
	l.Warn("loud")
	require.Contains(t, buf.String(), "msg=loud")
}
