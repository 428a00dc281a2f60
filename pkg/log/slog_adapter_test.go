package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsMessageEvent(t *testing.T) {
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		CircuitID: "circuit-456",
		Direction: DirectionOut,
		Layer:     LayerWire,
		Category:  CategoryMessage,
		Message: &MessageEvent{
			Name:      "ChatFromViewer",
			Number:    80,
			Frequency: "Low",
			Size:      48,
			Zerocoded: true,
		},
	})

	want := map[string]any{
		"level":     "DEBUG",
		"circuit":   "circuit-456",
		"direction": "OUT",
		"layer":     "WIRE",
		"message":   "ChatFromViewer",
		"frequency": "Low",
		"number":    float64(80),
		"size":      float64(48),
		"zerocoded": true,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsErrorEvent(t *testing.T) {
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		Direction: DirectionIn,
		Layer:     LayerWire,
		Category:  CategoryError,
		Frame:     &FrameEvent{Size: 3, Data: []byte{1, 2, 3}},
		Error: &ErrorEventData{
			Message: "codec: unknown message number",
			Kind:    "UnknownMessageNumber",
			Context: "parse",
		},
	})

	if entry["level"] != "ERROR" {
		t.Errorf("level: got %v, want ERROR", entry["level"])
	}
	if entry["error_kind"] != "UnknownMessageNumber" {
		t.Errorf("error_kind: got %v", entry["error_kind"])
	}
	if entry["error_context"] != "parse" {
		t.Errorf("error_context: got %v", entry["error_context"])
	}
	if entry["frame_size"] != float64(3) {
		t.Errorf("frame_size: got %v", entry["frame_size"])
	}
	if _, ok := entry["circuit"]; ok {
		t.Error("empty circuit should be omitted")
	}
}

func TestSlogAdapterLogsWarningAtWarnLevel(t *testing.T) {
	entry := logOne(t, Event{
		Category: CategoryWarning,
		Error:    &ErrorEventData{Kind: "TrailingBytes", Block: "NeighborBlock"},
	})
	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["error_block"] != "NeighborBlock" {
		t.Errorf("error_block: got %v", entry["error_block"])
	}
}
