package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/simwire/simwire-go/pkg/log"
)

// createTestLogFile writes events to a protocol log in a temp dir.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.slog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}
	return path
}

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: testTime,
			CircuitID: "3f2a9c1e-0000-4000-8000-000000000001",
			Direction: log.DirectionIn,
			Layer:     log.LayerWire,
			Category:  log.CategoryMessage,
			Frame:     log.NewFrameEvent([]byte{0xFF, 0xFF, 0x00, 0x01}),
			Message: &log.MessageEvent{
				Name: "TestMessage", Number: 1, Frequency: "Low", Size: 56,
				Zerocoded: true, Blocks: map[string]int{"TestBlock1": 1, "NeighborBlock": 4},
			},
		},
		{
			Timestamp: testTime.Add(time.Second),
			CircuitID: "3f2a9c1e-0000-4000-8000-000000000001",
			Direction: log.DirectionOut,
			Layer:     log.LayerWire,
			Category:  log.CategoryMessage,
			Message: &log.MessageEvent{
				Name: "PacketAck", Number: 0xFB, Frequency: "Fixed", Size: 9,
				Blocks: map[string]int{"Packets": 1},
			},
		},
		{
			Timestamp: testTime.Add(2 * time.Second),
			CircuitID: "77777777-0000-4000-8000-000000000002",
			Direction: log.DirectionIn,
			Layer:     log.LayerWire,
			Category:  log.CategoryError,
			Frame:     log.NewFrameEvent([]byte{0x42}),
			Error: &log.ErrorEventData{
				Layer: log.LayerWire, Message: "codec: unknown message number",
				Kind: "UnknownMessageNumber", Context: "parse",
			},
		},
	}
}
