package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Limits applied when reading captures. An Event nests at most three levels
// (event, payload, block counts), and a block-count map has one pair per
// template block.
const (
	maxEventNesting = 8
	maxEventPairs   = 1024
)

var (
	// eventEncMode writes canonical CBOR with RFC 3339 nanosecond timestamps,
	// so two captures of the same traffic are byte-identical.
	eventEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	// eventDecMode tolerates captures from older writers but bounds the
	// structure of each event.
	eventDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		MaxNestedLevels:   maxEventNesting,
		MaxMapPairs:       maxEventPairs,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("protocol log CBOR encoder mode: %v", err))
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("protocol log CBOR decoder mode: %v", err))
	}
	return dm
}

// EncodeEvent encodes one captured event with integer keys.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes one captured event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decoding protocol event: %w", err)
	}
	return event, nil
}

// NewEncoder returns an encoder that appends events to a capture stream.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns a decoder that reads events from a capture stream.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
