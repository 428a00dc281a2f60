package log

// Logger receives protocol events from a codec: one per parsed or built
// message, plus warnings and errors. Pass nil or NoopLogger to disable
// capture.
type Logger interface {
	// Log records an event. A codec shared between goroutines calls Log
	// concurrently, so implementations must be safe for that.
	Log(event Event)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(event Event)

// Log calls f(event).
func (f LoggerFunc) Log(event Event) {
	f(event)
}

// NoopLogger discards all events. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
)
