package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/simwire/simwire-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [circuit:id] DIRECTION LAYER Label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [circuit:%s] %-3s %s %s\n",
		ts, shortenCircuitID(event.CircuitID), event.Direction, event.Layer, eventLabel(event))

	if event.RemoteAddr != "" {
		fmt.Fprintf(w, "  Remote: %s\n", event.RemoteAddr)
	}
	if event.Message != nil {
		formatMessageDetails(w, event.Message)
	}
	if event.Error != nil {
		formatErrorDetails(w, event.Error)
	}
	if event.Frame != nil {
		formatFrameDetails(w, event.Frame)
	}

	fmt.Fprintln(w) // Blank line between events
}

// eventLabel names the event for the header line.
func eventLabel(event log.Event) string {
	switch {
	case event.Category == log.CategoryWarning:
		return "Warning"
	case event.Error != nil:
		return "Error"
	case event.Message != nil:
		return event.Message.Name
	case event.Frame != nil:
		return "Frame"
	default:
		return "Unknown"
	}
}

// shortenCircuitID returns the first 8 characters of the circuit ID, or "-".
func shortenCircuitID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatFrameDetails writes frame-specific details.
func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

// formatMessageDetails writes message-specific details.
func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	flags := []string{}
	if msg.Trusted {
		flags = append(flags, "trusted")
	}
	if msg.Zerocoded {
		flags = append(flags, "zerocoded")
	}
	fmt.Fprintf(w, "  Header: %s %d", msg.Frequency, msg.Number)
	if len(flags) > 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(flags, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Size: %d bytes\n", msg.Size)

	if len(msg.Blocks) > 0 {
		names := make([]string, 0, len(msg.Blocks))
		for name := range msg.Blocks {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%s=%d", name, msg.Blocks[name])
		}
		fmt.Fprintf(w, "  Blocks: %s\n", strings.Join(parts, " "))
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Kind != "" {
		fmt.Fprintf(w, "  Kind: %s\n", err.Kind)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
	if err.MessageName != "" {
		loc := err.MessageName
		if err.Block != "" {
			loc += "." + err.Block
		}
		if err.Field != "" {
			loc += "." + err.Field
		}
		fmt.Fprintf(w, "  Location: %s\n", loc)
	}
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
