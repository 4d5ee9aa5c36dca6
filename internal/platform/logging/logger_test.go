package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo).Named("pipeline")

	logger.Warn("fetch game feed failed", "game_pk", int64(745804), "error", errors.New("status=503"))
	logger.Debug("suppressed below level")

	out := buf.String()
	for _, want := range []string{`"msg":"fetch game feed failed"`, `"game_pk":745804`, `"error":"status=503"`, `"logger":"pipeline"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output, got=%s", want, out)
		}
	}
	if strings.Contains(out, "suppressed") {
		t.Fatalf("debug line should be filtered, got=%s", out)
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Error("still no panic")
}
