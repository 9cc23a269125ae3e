package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("analysis complete",
		String("source", "game.toml"),
		Int("games", 3),
		Duration("elapsed", 2*time.Millisecond),
		Err(errors.New("boom")),
		Any("watch", true),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if got["message"] != "analysis complete" || got["level"] != "info" {
		t.Errorf("message/level = %v/%v", got["message"], got["level"])
	}
	if got["source"] != "game.toml" {
		t.Errorf("source = %v", got["source"])
	}
	if got["games"] != float64(3) {
		t.Errorf("games = %v", got["games"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v", got["error"])
	}
	if got["watch"] != true {
		t.Errorf("watch = %v", got["watch"])
	}
}

func TestZerologAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("hidden", String("k", "v"))
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("below-level messages were written: %s", buf.String())
	}

	l.Error("shown")
	if buf.Len() == 0 {
		t.Error("error message was not written")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", Int("n", 1))
	l.Warn("x")
	l.Error("x", Err(errors.New("e")))
}
