package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/simwire/simwire-go/pkg/log"
)

func TestFormatMessageEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z",
		"[circuit:3f2a9c1e]",
		"IN  WIRE TestMessage",
		"Header: Low 1 [zerocoded]",
		"Size: 56 bytes",
		"Blocks: NeighborBlock=4 TestBlock1=1",
		"Data: ffff0001",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatErrorEvent(t *testing.T) {
	event := log.Event{
		Timestamp: testTime,
		Direction: log.DirectionOut,
		Layer:     log.LayerWire,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer: log.LayerWire, Message: "codec: missing field",
			Kind: "MissingField", Context: "build",
			MessageName: "UseCircuitCode", Block: "CircuitCode", Field: "Code",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{
		"[circuit:-] OUT WIRE Error",
		"Kind: MissingField",
		"Context: build",
		"Location: UseCircuitCode.CircuitCode.Code",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatWarningEvent(t *testing.T) {
	event := log.Event{
		Timestamp:  testTime,
		Category:   log.CategoryWarning,
		RemoteAddr: "10.0.0.1:13000",
		Error:      &log.ErrorEventData{Message: "2 trailing bytes", Kind: "TrailingBytes"},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Warning") {
		t.Errorf("expected Warning label, got:\n%s", output)
	}
	if !strings.Contains(output, "Remote: 10.0.0.1:13000") {
		t.Errorf("expected remote address, got:\n%s", output)
	}
}

func TestFormatTruncatedFrame(t *testing.T) {
	event := log.Event{Timestamp: testTime, Frame: log.NewFrameEvent(make([]byte, log.MaxFrameData+10))}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Frame") || !strings.Contains(output, "(truncated)") {
		t.Errorf("expected truncated frame, got:\n%s", output)
	}
	if !strings.Contains(output, "Size: 266 bytes") {
		t.Errorf("expected full size, got:\n%s", output)
	}
}

func TestShortenCircuitID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "-"},
		{"abc", "abc"},
		{"abcdefgh-ijkl", "abcdefgh"},
	}
	for _, tt := range tests {
		if got := shortenCircuitID(tt.in); got != tt.want {
			t.Errorf("shortenCircuitID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunView(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()
	if strings.Count(output, "[circuit:") != 3 {
		t.Errorf("expected 3 events, got:\n%s", output)
	}
}

func TestRunViewWithFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	tests := []struct {
		name  string
		opts  FilterOptions
		count int
		want  string
	}{
		{"direction out", FilterOptions{Direction: "out"}, 1, "PacketAck"},
		{"category error", FilterOptions{Category: "ERROR"}, 1, "UnknownMessageNumber"},
		{"circuit", FilterOptions{Circuit: "77777777-0000-4000-8000-000000000002"}, 1, "[circuit:77777777]"},
		{"message", FilterOptions{Message: "TestMessage"}, 1, "TestMessage"},
		{"layer wire", FilterOptions{Layer: "wire"}, 3, "PacketAck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := tt.opts.Filter()
			if err != nil {
				t.Fatalf("Filter() failed: %v", err)
			}
			var buf bytes.Buffer
			if err := RunView(path, filter, &buf); err != nil {
				t.Fatalf("RunView failed: %v", err)
			}
			output := buf.String()
			if got := strings.Count(output, "[circuit:"); got != tt.count {
				t.Errorf("got %d events, want %d:\n%s", got, tt.count, output)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, output)
			}
		})
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/capture.slog", log.Filter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
