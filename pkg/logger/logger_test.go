package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel).With(String("component", "test"))

	l.Warn("provider failed",
		String("ticker", "ABC"),
		Int("count", 3),
		Duration("took", 1500*time.Millisecond),
		Bool("cached", false),
		Error(errors.New("boom")),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if got["level"] != "warn" || got["message"] != "provider failed" {
		t.Fatalf("unexpected header fields: %v", got)
	}
	if got["component"] != "test" || got["ticker"] != "ABC" || got["error"] != "boom" {
		t.Fatalf("missing fields: %v", got)
	}
	if got["count"] != float64(3) || got["took"] != float64(1500) || got["cached"] != false {
		t.Fatalf("wrong typed fields: %v", got)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level: %q", buf.String())
	}
	l.Info("shown")
	if buf.Len() == 0 {
		t.Fatalf("info should be written")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud", Output: "stdout"}); err == nil {
		t.Fatalf("expected invalid level error")
	}
}

func TestNopDiscards(t *testing.T) {
	Nop().Error("nothing", Error(errors.New("x")))
}
