package log

import (
	"time"
)

// Event represents a protocol log event captured by the codec.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CircuitID identifies the circuit the buffer belongs to (may be empty).
	CircuitID string `cbor:"2,keyasint,omitempty"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// RemoteAddr is the peer address (IP:port), if the caller knows it.
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload.
	Frame   *FrameEvent     `cbor:"10,keyasint,omitempty"` // Raw buffer
	Message *MessageEvent   `cbor:"11,keyasint,omitempty"` // Parsed or built message
	Error   *ErrorEventData `cbor:"14,keyasint,omitempty"` // Errors and warnings
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates a parsed (received) buffer.
	DirectionIn Direction = 0
	// DirectionOut indicates a built (outgoing) buffer.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the raw byte layer.
	LayerTransport Layer = 0
	// LayerWire is the message codec layer.
	LayerWire Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a successfully parsed or built message.
	CategoryMessage Category = 0
	// CategoryWarning indicates a recoverable condition, such as trailing
	// bytes tolerated in lenient mode.
	CategoryWarning Category = 1
	// CategoryError indicates a failed parse or build.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryWarning:
		return "WARNING"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MaxFrameData is the number of raw bytes kept in a FrameEvent.
const MaxFrameData = 256

// FrameEvent captures the raw buffer a message was parsed from or built into.
type FrameEvent struct {
	// Size is the buffer size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw buffer (may be truncated for large buffers).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// NewFrameEvent copies up to MaxFrameData bytes of buf.
func NewFrameEvent(buf []byte) *FrameEvent {
	n := len(buf)
	truncated := false
	if n > MaxFrameData {
		n = MaxFrameData
		truncated = true
	}
	data := make([]byte, n)
	copy(data, buf)
	return &FrameEvent{Size: len(buf), Data: data, Truncated: truncated}
}

// MessageEvent describes a parsed or built message.
type MessageEvent struct {
	// Name is the template name.
	Name string `cbor:"1,keyasint"`

	// Number is the message number within its frequency class.
	Number uint32 `cbor:"2,keyasint"`

	// Frequency is the frequency class name (High, Medium, Low, Fixed).
	Frequency string `cbor:"3,keyasint"`

	// Size is the encoded size in bytes, header included.
	Size int `cbor:"4,keyasint"`

	// Zerocoded reports whether the template asks for zero-coding.
	Zerocoded bool `cbor:"5,keyasint,omitempty"`

	// Trusted reports whether the template belongs on a trusted circuit.
	Trusted bool `cbor:"6,keyasint,omitempty"`

	// Blocks maps block names to their instance counts.
	Blocks map[string]int `cbor:"7,keyasint,omitempty"`
}

// ErrorEventData captures codec errors and warnings.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Kind is the codec error kind (BufferUnderrun, TrailingBytes, ...).
	Kind string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed (parse, build).
	Context string `cbor:"4,keyasint,omitempty"`

	// MessageName is the template involved, if it was resolved.
	MessageName string `cbor:"5,keyasint,omitempty"`

	// Block is the block involved, if any.
	Block string `cbor:"6,keyasint,omitempty"`

	// Field is the field involved, if any.
	Field string `cbor:"7,keyasint,omitempty"`
}
