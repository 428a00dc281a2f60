package inspect

import (
	"reflect"
	"testing"

	"github.com/simwire/simwire-go/pkg/template"
)

func TestResolveMessageName(t *testing.T) {
	tbl := template.MustDefault()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"TestMessage", "TestMessage", true},
		{"testmessage", "TestMessage", true},
		{"PACKETACK", "PacketAck", true},
		{"NoSuchThing", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveMessageName(tbl, tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveMessageName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveBlockAndFieldNames(t *testing.T) {
	m, _ := template.MustDefault().ByName("TestMessage")

	if got, ok := ResolveBlockName(m, "neighborblock"); !ok || got != "NeighborBlock" {
		t.Errorf("ResolveBlockName() = %q, %v", got, ok)
	}
	if _, ok := ResolveBlockName(m, "Missing"); ok {
		t.Error("ResolveBlockName(Missing) should fail")
	}

	b, _ := m.Block("NeighborBlock")
	if got, ok := ResolveFieldName(b, "TEST2"); !ok || got != "Test2" {
		t.Errorf("ResolveFieldName() = %q, %v", got, ok)
	}
}

func TestResolveNamePrefersExactMatch(t *testing.T) {
	got, ok := resolveName([]string{"data", "Data"}, "Data")
	if !ok || got != "Data" {
		t.Errorf("resolveName() = %q, %v", got, ok)
	}
}

func TestCompleteMessageName(t *testing.T) {
	got := CompleteMessageName(template.MustDefault(), "agent")
	want := []string{"AgentDataUpdate", "AgentMovementComplete", "AgentThrottle", "AgentUpdate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompleteMessageName() = %v, want %v", got, want)
	}
}
