package commands

import (
	"testing"

	"github.com/simwire/simwire-go/pkg/log"
)

func TestFilterOptions(t *testing.T) {
	filter, err := FilterOptions{
		Circuit:   "abc",
		Message:   "AgentUpdate",
		Direction: "IN",
		Category:  "warning",
		Layer:     "Transport",
		TimeStart: "2026-01-28T10:00:00Z",
		TimeEnd:   "2026-01-28T11:00:00Z",
	}.Filter()
	if err != nil {
		t.Fatalf("Filter() failed: %v", err)
	}

	if filter.CircuitID != "abc" || filter.MessageName != "AgentUpdate" {
		t.Errorf("unexpected filter: %+v", filter)
	}
	if filter.Direction == nil || *filter.Direction != log.DirectionIn {
		t.Errorf("Direction = %v", filter.Direction)
	}
	if filter.Category == nil || *filter.Category != log.CategoryWarning {
		t.Errorf("Category = %v", filter.Category)
	}
	if filter.Layer == nil || *filter.Layer != log.LayerTransport {
		t.Errorf("Layer = %v", filter.Layer)
	}
	if filter.TimeStart == nil || filter.TimeEnd == nil || !filter.TimeStart.Before(*filter.TimeEnd) {
		t.Errorf("time range = %v..%v", filter.TimeStart, filter.TimeEnd)
	}
}

func TestFilterOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"direction", FilterOptions{Direction: "sideways"}},
		{"category", FilterOptions{Category: "state"}},
		{"layer", FilterOptions{Layer: "service"}},
		{"time start", FilterOptions{TimeStart: "yesterday"}},
		{"time end", FilterOptions{TimeEnd: "2026-13-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.opts.Filter(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
