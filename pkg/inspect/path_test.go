package inspect

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input    string
		block    string
		index    int
		hasIndex bool
		field    string
	}{
		{"TestBlock1.Test1", "TestBlock1", 0, false, "Test1"},
		{"NeighborBlock[2].Test0", "NeighborBlock", 2, true, "Test0"},
		{"NeighborBlock[0x3]", "NeighborBlock", 3, true, ""},
		{"  AgentData  ", "AgentData", 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePath(tt.input)
			if err != nil {
				t.Fatalf("ParsePath(%q) failed: %v", tt.input, err)
			}
			if p.Block != tt.block || p.Index != tt.index || p.HasIndex != tt.hasIndex || p.Field != tt.field {
				t.Errorf("ParsePath(%q) = %+v", tt.input, p)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmptyPath},
		{"   ", ErrEmptyPath},
		{".Field", ErrInvalidPath},
		{"Block.", ErrInvalidPath},
		{"Block[1", ErrInvalidPath},
		{"Block[x].F", ErrInvalidNumber},
		{"Block[256]", ErrInvalidNumber},
		{"Block.F.G", ErrInvalidPath},
		{"Bl ock", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParsePath(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, in := range []string{"A", "A[3]", "A.B", "A[0].B"} {
		p, err := ParsePath(in)
		if err != nil {
			t.Fatalf("ParsePath(%q) failed: %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}
