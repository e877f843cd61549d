package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	t.Run("escreve JSON com atributos de With", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "info").With("component", "rooms")

		logger.Info("room created", "room_id", "abc")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("saída não é JSON: %v (%s)", err, buf.String())
		}
		if entry["msg"] != "room created" || entry["component"] != "rooms" || entry["room_id"] != "abc" {
			t.Errorf("entrada inesperada: %v", entry)
		}
	})

	t.Run("respeita o nível configurado", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "warn")

		logger.Info("ignored")
		logger.Debug("ignored")
		if buf.Len() != 0 {
			t.Errorf("esperava saída vazia, obteve %s", buf.String())
		}

		logger.Error("kept")
		if buf.Len() == 0 {
			t.Error("erro deveria ser registrado")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for input, expected := range tests {
		if got := ParseLevel(input); got != expected {
			t.Errorf("ParseLevel(%q): esperava %v, obteve %v", input, expected, got)
		}
	}
}
