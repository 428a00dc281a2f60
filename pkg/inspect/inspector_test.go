package inspect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/simwire/simwire-go/pkg/codec"
)

func testMessage(t *testing.T) *codec.Message {
	t.Helper()
	pkt, err := codec.Build("TestMessage", codec.BlockData{
		"TestBlock1": {{"Test1": 1337}},
		"NeighborBlock": {
			{"Test0": 0, "Test1": 1, "Test2": 2},
			{"Test0": 3, "Test1": 4, "Test2": 5},
			{"Test0": 6, "Test1": 7, "Test2": 8},
			{"Test0": 9, "Test1": 10, "Test2": 11},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	msg, err := codec.Parse(pkt.Buffer)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return msg
}

func TestInspectorGet(t *testing.T) {
	insp := NewInspector(testMessage(t))

	v, err := insp.Get("TestBlock1.Test1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != uint32(1337) {
		t.Errorf("Get() = %v, want 1337", v)
	}

	s, err := insp.GetString("neighborblock[3].test2")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if s != "11" {
		t.Errorf("GetString() = %q, want %q", s, "11")
	}
}

func TestInspectorErrors(t *testing.T) {
	insp := NewInspector(testMessage(t))

	if _, err := insp.Get("Nope.Test1"); !errors.Is(err, codec.ErrUnknownBlock) {
		t.Errorf("unknown block: got %v", err)
	}
	if _, err := insp.Get("TestBlock1.Nope"); !errors.Is(err, codec.ErrUnknownField) {
		t.Errorf("unknown field: got %v", err)
	}
	if _, err := insp.Get("NeighborBlock[4].Test1"); !errors.Is(err, codec.ErrIndexOutOfRange) {
		t.Errorf("index out of range: got %v", err)
	}
	if _, err := insp.Get("NeighborBlock"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("path without field: got %v", err)
	}
}

func TestInspectorLookup(t *testing.T) {
	insp := NewInspector(testMessage(t))

	got, err := insp.Lookup("NeighborBlock[1]")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	want := []string{
		"NeighborBlock[1].Test0 = 3",
		"NeighborBlock[1].Test1 = 4",
		"NeighborBlock[1].Test2 = 5",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup() = %v, want %v", got, want)
	}

	all, err := insp.Lookup("NeighborBlock")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(all) != 12 {
		t.Errorf("Lookup(NeighborBlock) returned %d lines, want 12", len(all))
	}

	one, err := insp.Lookup("testblock1.test1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !reflect.DeepEqual(one, []string{"TestBlock1.Test1 = 1337"}) {
		t.Errorf("Lookup() = %v", one)
	}

	if insp.Message().Name() != "TestMessage" {
		t.Errorf("Message().Name() = %q", insp.Message().Name())
	}
}
