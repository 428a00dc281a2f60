package template

import (
	"fmt"
	"strings"

	"github.com/simwire/simwire-go/pkg/fieldtype"
)

// Frequency is the header class of a message. It decides how many bytes the
// message number occupies on the wire.
type Frequency uint8

const (
	// High messages use a 1-byte number (0x01-0xFE).
	High Frequency = iota
	// Medium messages use 0xFF followed by a 1-byte number.
	Medium
	// Low messages use 0xFF 0xFF followed by a 2-byte big-endian number.
	Low
	// Fixed messages use 0xFF 0xFF 0xFF followed by a 1-byte number.
	Fixed
)

// String returns the frequency name.
func (f Frequency) String() string {
	switch f {
	case High:
		return "High"
	case Medium:
		return "Medium"
	case Low:
		return "Low"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// ParseFrequency resolves a frequency name (case-insensitive).
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range []Frequency{High, Medium, Low, Fixed} {
		if strings.EqualFold(f.String(), s) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown frequency %q", s)
}

// Trust says whether a message may only travel on a trusted circuit.
type Trust uint8

const (
	NotTrusted Trust = iota
	Trusted
)

// String returns the trust level name.
func (t Trust) String() string {
	if t == Trusted {
		return "Trusted"
	}
	return "NotTrusted"
}

// ParseTrust resolves "Trusted" or "NotTrusted" (case-insensitive).
func ParseTrust(s string) (Trust, error) {
	switch {
	case strings.EqualFold(s, "Trusted"):
		return Trusted, nil
	case strings.EqualFold(s, "NotTrusted"):
		return NotTrusted, nil
	default:
		return 0, fmt.Errorf("unknown trust level %q", s)
	}
}

// Shape is the repetition rule of a block.
type Shape uint8

const (
	// Single blocks appear exactly once with no count marker.
	Single Shape = iota
	// Multiple blocks appear exactly Count times with no count marker.
	Multiple
	// Variable blocks are preceded by a 1-byte instance count.
	Variable
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Single:
		return "Single"
	case Multiple:
		return "Multiple"
	case Variable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// ParseShape resolves a shape name (case-insensitive).
func ParseShape(s string) (Shape, error) {
	for _, sh := range []Shape{Single, Multiple, Variable} {
		if strings.EqualFold(sh.String(), s) {
			return sh, nil
		}
	}
	return 0, fmt.Errorf("unknown block shape %q", s)
}

// Field describes one typed field of a block. Size is the declared width of
// Fixed fields and zero otherwise.
type Field struct {
	Name string
	Type fieldtype.Type
	Size int
}

// Block describes a named group of fields and its repetition shape.
type Block struct {
	Name   string
	Shape  Shape
	Count  int // instance count for Multiple blocks
	Fields []Field

	fieldIndex map[string]int
}

// FieldIndex returns the position of the named field.
func (b *Block) FieldIndex(name string) (int, bool) {
	if b.fieldIndex != nil {
		i, ok := b.fieldIndex[name]
		return i, ok
	}
	for i := range b.Fields {
		if b.Fields[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// MinInstances returns the number of instances the block requires.
func (b *Block) MinInstances() int {
	switch b.Shape {
	case Single:
		return 1
	case Multiple:
		return b.Count
	default:
		return 0
	}
}

// Message is the template of one message: its identity, trust level,
// zero-coding eligibility and ordered block layout.
type Message struct {
	Name       string
	Number     uint32
	Frequency  Frequency
	Trust      Trust
	Zerocoded  bool
	Deprecated bool
	Blocks     []*Block

	blockIndex map[string]int
}

// BlockIndex returns the position of the named block.
func (m *Message) BlockIndex(name string) (int, bool) {
	if m.blockIndex != nil {
		i, ok := m.blockIndex[name]
		return i, ok
	}
	for i, b := range m.Blocks {
		if b.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Block returns the named block descriptor.
func (m *Message) Block(name string) (*Block, bool) {
	i, ok := m.BlockIndex(name)
	if !ok {
		return nil, false
	}
	return m.Blocks[i], true
}

// IsTrusted returns true if the message belongs on a trusted circuit.
func (m *Message) IsTrusted() bool {
	return m.Trust == Trusted
}

// ID returns "Frequency Number", the identity used by the header codec.
func (m *Message) ID() string {
	return fmt.Sprintf("%s %d", m.Frequency, m.Number)
}

// numberRange returns the legal message numbers for a frequency so that every
// number encodes to an unambiguous header.
func numberRange(f Frequency) (lo, hi uint32) {
	switch f {
	case High, Medium:
		return 1, 0xFE
	case Low:
		return 1, 0xFEFF
	default:
		return 0, 0xFF
	}
}

// NormalizeNumber maps the catalogue spelling of a Fixed message number
// (0xFFFFFFxx) to the single byte carried in its header. Numbers of other
// frequencies are returned unchanged.
func NormalizeNumber(f Frequency, n uint32) uint32 {
	if f == Fixed && n>>8 == 0xFFFFFF {
		return n & 0xFF
	}
	return n
}

// validate checks a message and builds its lookup indexes.
func (m *Message) validate() error {
	if m.Name == "" {
		return fmt.Errorf("message without a name")
	}
	if m.Frequency > Fixed {
		return fmt.Errorf("message %s: invalid frequency %d", m.Name, m.Frequency)
	}
	lo, hi := numberRange(m.Frequency)
	if m.Number < lo || m.Number > hi {
		return fmt.Errorf("message %s: %s number %d outside %d-%d", m.Name, m.Frequency, m.Number, lo, hi)
	}

	m.blockIndex = make(map[string]int, len(m.Blocks))
	for i, b := range m.Blocks {
		if b == nil || b.Name == "" {
			return fmt.Errorf("message %s: block %d has no name", m.Name, i)
		}
		if _, dup := m.blockIndex[b.Name]; dup {
			return fmt.Errorf("message %s: duplicate block %s", m.Name, b.Name)
		}
		m.blockIndex[b.Name] = i
		if err := b.validate(); err != nil {
			return fmt.Errorf("message %s: %w", m.Name, err)
		}
	}
	return nil
}

func (b *Block) validate() error {
	switch b.Shape {
	case Single, Variable:
		if b.Count != 0 {
			return fmt.Errorf("block %s: %s block declares count %d", b.Name, b.Shape, b.Count)
		}
	case Multiple:
		if b.Count < 1 || b.Count > 0xFF {
			return fmt.Errorf("block %s: multiple count %d outside 1-255", b.Name, b.Count)
		}
	default:
		return fmt.Errorf("block %s: invalid shape %d", b.Name, b.Shape)
	}

	b.fieldIndex = make(map[string]int, len(b.Fields))
	for i, f := range b.Fields {
		if f.Name == "" {
			return fmt.Errorf("block %s: field %d has no name", b.Name, i)
		}
		if _, dup := b.fieldIndex[f.Name]; dup {
			return fmt.Errorf("block %s: duplicate field %s", b.Name, f.Name)
		}
		if !f.Type.IsValid() {
			return fmt.Errorf("block %s: field %s has invalid type", b.Name, f.Name)
		}
		if f.Type == fieldtype.Fixed && f.Size <= 0 {
			return fmt.Errorf("block %s: fixed field %s needs a positive size", b.Name, f.Name)
		}
		if f.Type != fieldtype.Fixed && f.Size != 0 {
			return fmt.Errorf("block %s: field %s of type %s declares size %d", b.Name, f.Name, f.Type, f.Size)
		}
		b.fieldIndex[f.Name] = i
	}
	return nil
}
