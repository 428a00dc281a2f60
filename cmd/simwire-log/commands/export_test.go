package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simwire/simwire-go/pkg/log"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "jsonl", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	var event log.Event
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if event.Message == nil || event.Message.Name != "PacketAck" {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "csv", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}
	if records[0][1] != "circuit_id" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if got := records[1]; got[5] != "TestMessage" || got[6] != "56" {
		t.Errorf("unexpected row: %v", got)
	}
	if got := records[3]; got[4] != "ERROR" || got[6] != "1" || got[7] != "UnknownMessageNumber" {
		t.Errorf("unexpected row: %v", got)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, log.Filter{}, "xml", filepath.Join(t.TempDir(), "out")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.slog")

	filter, err := FilterOptions{Circuit: "3f2a9c1e-0000-4000-8000-000000000001"}.Filter()
	if err != nil {
		t.Fatalf("Filter() failed: %v", err)
	}
	count, err := RunFilter(path, filter, out)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	reader, err := log.NewReader(out)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()
	n := 0
	for {
		if _, err := reader.Next(); err != nil {
			break
		}
		n++
	}
	if n != 2 {
		t.Errorf("filtered file holds %d events, want 2", n)
	}
}
