package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/simwire/simwire-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Messages          map[string]*MessageStats
	Circuits          map[string]*CircuitStats
	ErrorsByKind      map[string]int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// MessageStats holds per-template counters.
type MessageStats struct {
	In    int
	Out   int
	Bytes int
}

// CircuitStats holds statistics for a single circuit.
type CircuitStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	RemoteAddr string
}

func newStats() *Stats {
	return &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Messages:          make(map[string]*MessageStats),
		Circuits:          make(map[string]*CircuitStats),
		ErrorsByKind:      make(map[string]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.CircuitID != "" {
		c, ok := s.Circuits[event.CircuitID]
		if !ok {
			c = &CircuitStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			s.Circuits[event.CircuitID] = c
		}
		c.Events++
		if event.Timestamp.After(c.LastSeen) {
			c.LastSeen = event.Timestamp
		}
		if event.RemoteAddr != "" && c.RemoteAddr == "" {
			c.RemoteAddr = event.RemoteAddr
		}
	}

	if event.Message != nil && event.Category == log.CategoryMessage {
		m, ok := s.Messages[event.Message.Name]
		if !ok {
			m = &MessageStats{}
			s.Messages[event.Message.Name] = m
		}
		if event.Direction == log.DirectionOut {
			m.Out++
		} else {
			m.In++
		}
		m.Bytes += event.Message.Size
	}

	if event.Error != nil && event.Category == log.CategoryError {
		kind := event.Error.Kind
		if kind == "" {
			kind = "Unknown"
		}
		s.ErrorsByKind[kind]++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Simulator Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerWire} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryWarning, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Messages) > 0 {
		fmt.Fprintln(w, "Messages:")
		names := make([]string, 0, len(stats.Messages))
		for name := range stats.Messages {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			m := stats.Messages[name]
			fmt.Fprintf(w, "  %-28s in=%d out=%d bytes=%d\n", name, m.In, m.Out, m.Bytes)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Circuits: %d\n", len(stats.Circuits))
	if len(stats.Circuits) > 0 {
		type circuitInfo struct {
			id    string
			stats *CircuitStats
		}
		circuits := make([]circuitInfo, 0, len(stats.Circuits))
		for id, cs := range stats.Circuits {
			circuits = append(circuits, circuitInfo{id, cs})
		}
		sort.Slice(circuits, func(i, j int) bool {
			return circuits[i].stats.FirstSeen.Before(circuits[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, c := range circuits {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenCircuitID(c.id), c.stats.Events, duration)
			if c.stats.RemoteAddr != "" {
				fmt.Fprintf(w, "           Remote: %s\n", c.stats.RemoteAddr)
			}
		}
	}

	if len(stats.ErrorsByKind) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors by Kind:")
		kinds := make([]string, 0, len(stats.ErrorsByKind))
		for k := range stats.ErrorsByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-20s %d\n", k+":", stats.ErrorsByKind[k])
		}
	}
}
