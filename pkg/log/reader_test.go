package log

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.slog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
}

func testEvents() []Event {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Event{
		{Timestamp: base, CircuitID: "c1", Direction: DirectionIn, Layer: LayerWire, Category: CategoryMessage,
			Message: &MessageEvent{Name: "TestMessage"}},
		{Timestamp: base.Add(time.Second), CircuitID: "c2", Direction: DirectionOut, Layer: LayerWire, Category: CategoryMessage,
			Message: &MessageEvent{Name: "ChatFromViewer"}},
		{Timestamp: base.Add(2 * time.Second), CircuitID: "c1", Direction: DirectionIn, Layer: LayerWire, Category: CategoryWarning,
			Error: &ErrorEventData{Kind: "TrailingBytes", MessageName: "TestMessage"}},
		{Timestamp: base.Add(3 * time.Second), CircuitID: "c1", Direction: DirectionIn, Layer: LayerWire, Category: CategoryError,
			Error: &ErrorEventData{Kind: "UnknownMessageNumber"}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestLogFile(t, testEvents())

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 4 {
		t.Fatalf("got %d events, want 4", len(read))
	}
	if read[1].CircuitID != "c2" {
		t.Errorf("read[1].CircuitID = %q, want %q", read[1].CircuitID, "c2")
	}
}

func TestReaderFilters(t *testing.T) {
	out := DirectionOut
	warning := CategoryWarning
	start := time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)
	end := time.Date(2026, 3, 1, 12, 0, 3, 0, time.UTC)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 4},
		{"circuit", Filter{CircuitID: "c1"}, 3},
		{"direction", Filter{Direction: &out}, 1},
		{"category", Filter{Category: &warning}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"message name", Filter{MessageName: "TestMessage"}, 2},
		{"combined", Filter{CircuitID: "c1", MessageName: "TestMessage", Category: &warning}, 1},
	}

	path := createTestLogFile(t, testEvents())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestStreamReader(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, e := range testEvents() {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	r := NewStreamReader(&buf, Filter{CircuitID: "c2"})
	read := readAll(t, r)
	if len(read) != 1 || read[0].Message.Name != "ChatFromViewer" {
		t.Errorf("got %+v", read)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.slog")); err == nil {
		t.Error("expected error for missing file")
	}
}
