package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Messages are logged at Debug,
// warnings at Warn and errors at Error level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.CircuitID != "" {
		attrs = append(attrs, slog.String("circuit", event.CircuitID))
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	if event.Message != nil {
		attrs = append(attrs,
			slog.String("message", event.Message.Name),
			slog.String("frequency", event.Message.Frequency),
			slog.Uint64("number", uint64(event.Message.Number)),
			slog.Int("size", event.Message.Size),
		)
		if event.Message.Zerocoded {
			attrs = append(attrs, slog.Bool("zerocoded", true))
		}
		if event.Message.Trusted {
			attrs = append(attrs, slog.Bool("trusted", true))
		}
	}
	if event.Frame != nil {
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.Bool("truncated", event.Frame.Truncated),
		)
	}
	if event.Error != nil {
		attrs = append(attrs,
			slog.String("error_kind", event.Error.Kind),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
		if event.Error.MessageName != "" {
			attrs = append(attrs, slog.String("error_message_name", event.Error.MessageName))
		}
		if event.Error.Block != "" {
			attrs = append(attrs, slog.String("error_block", event.Error.Block))
		}
		if event.Error.Field != "" {
			attrs = append(attrs, slog.String("error_field", event.Error.Field))
		}
	}

	level := slog.LevelDebug
	switch event.Category {
	case CategoryWarning:
		level = slog.LevelWarn
	case CategoryError:
		level = slog.LevelError
	}
	a.logger.LogAttrs(context.Background(), level, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
