// Package log provides structured protocol logging for the message codec.
//
// This package defines the Logger interface and Event types for capturing
// every buffer the codec parses or builds. It is separate from operational
// logging (slog); protocol capture provides a complete machine-readable
// event trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by handing a Logger to the codec:
//
//	// For development: log to console via slog
//	c := codec.New(tbl, codec.WithProtocolLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to a binary file
//	fl, _ := log.NewFileLogger("/var/log/simwire/circuit.slog")
//
//	// Long-running processes: rotate the file
//	rl := log.NewRotatingFileLogger(log.RotateConfig{Path: "circuit.slog", MaxSizeMB: 64})
//
//	// Both: use MultiLogger
//	l := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
//   - Message: a parsed (IN) or built (OUT) message (MessageEvent)
//   - Warning: a tolerated anomaly such as trailing bytes (ErrorEventData)
//   - Error: a failed parse or build (ErrorEventData, plus the raw FrameEvent
//     for failed parses)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events. The simwire-log CLI tool
// provides viewing, filtering and statistics.
package log
