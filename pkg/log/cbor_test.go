package log

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp:  ts,
		CircuitID:  "circuit-7",
		Direction:  DirectionOut,
		Layer:      LayerWire,
		Category:   CategoryMessage,
		RemoteAddr: "192.168.1.100:13000",
		Message: &MessageEvent{
			Name:      "TestMessage",
			Number:    1,
			Frequency: "Low",
			Size:      56,
			Zerocoded: true,
			Blocks:    map[string]int{"TestBlock1": 1, "NeighborBlock": 4},
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.CircuitID != original.CircuitID {
		t.Errorf("CircuitID: got %q, want %q", decoded.CircuitID, original.CircuitID)
	}
	if decoded.Direction != original.Direction {
		t.Errorf("Direction: got %v, want %v", decoded.Direction, original.Direction)
	}
	if decoded.RemoteAddr != original.RemoteAddr {
		t.Errorf("RemoteAddr: got %q, want %q", decoded.RemoteAddr, original.RemoteAddr)
	}
	if decoded.Message == nil {
		t.Fatal("Message is nil")
	}
	if decoded.Message.Name != "TestMessage" || decoded.Message.Size != 56 || !decoded.Message.Zerocoded {
		t.Errorf("Message: got %+v", decoded.Message)
	}
	if decoded.Message.Blocks["NeighborBlock"] != 4 {
		t.Errorf("Blocks[NeighborBlock]: got %d, want 4", decoded.Message.Blocks["NeighborBlock"])
	}
	if decoded.Frame != nil || decoded.Error != nil {
		t.Error("unexpected payloads after round trip")
	}
}

func TestErrorEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		Direction: DirectionIn,
		Layer:     LayerWire,
		Category:  CategoryError,
		Frame:     NewFrameEvent([]byte{0xFF, 0xFF, 0x00}),
		Error: &ErrorEventData{
			Layer:       LayerWire,
			Message:     "codec: buffer underrun",
			Kind:        "BufferUnderrun",
			Context:     "parse",
			MessageName: "TestMessage",
			Block:       "TestBlock1",
			Field:       "Test1",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Error == nil {
		t.Fatal("Error is nil")
	}
	if *decoded.Error != *original.Error {
		t.Errorf("Error: got %+v, want %+v", decoded.Error, original.Error)
	}
	if decoded.Frame == nil || !bytes.Equal(decoded.Frame.Data, []byte{0xFF, 0xFF, 0x00}) {
		t.Errorf("Frame: got %+v", decoded.Frame)
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := 0; i < 3; i++ {
		if err := enc.Encode(Event{Timestamp: time.Now(), CircuitID: "c", Category: CategoryMessage}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	count := 0
	for {
		var ev Event
		err := dec.Decode(&ev)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		count++
	}
	if count != 3 {
		t.Errorf("decoded %d events, want 3", count)
	}
}

func TestDecodeEventInvalidData(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xFF, 0x00, 0x13}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}

func TestEncodeEventIsCanonical(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	a := Event{Timestamp: ts, Category: CategoryMessage, Message: &MessageEvent{Name: "TestMessage", Blocks: map[string]int{}}}
	b := a
	a.Message.Blocks["TestBlock1"] = 1
	a.Message.Blocks["NeighborBlock"] = 4
	b.Message = &MessageEvent{Name: "TestMessage", Blocks: map[string]int{"NeighborBlock": 4, "TestBlock1": 1}}

	encA, err := EncodeEvent(a)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	encB, err := EncodeEvent(b)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if !bytes.Equal(encA, encB) {
		t.Errorf("same event encoded differently:\n%x\n%x", encA, encB)
	}
}

func TestDecodeEventNestingLimit(t *testing.T) {
	// Ten nested one-element arrays around a zero.
	data := append(bytes.Repeat([]byte{0x81}, 10), 0x00)

	_, err := DecodeEvent(data)
	var nested *cbor.MaxNestedLevelError
	if !errors.As(err, &nested) {
		t.Fatalf("DecodeEvent error = %v, want MaxNestedLevelError", err)
	}
}
