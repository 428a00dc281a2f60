// Package inspect provides message inspection utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "NeighborBlock[2].IP")
//   - Resolving message, block and field names case-insensitively
//   - Reading values out of parsed messages
//   - Formatting messages, templates and raw buffers for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
)

// Path represents a parsed inspection path.
// Format: Block[.Field], Block[index][.Field]
type Path struct {
	// Block is the block name.
	Block string

	// Index is the block instance (0 unless HasIndex).
	Index int

	// HasIndex indicates an explicit [index] was given.
	HasIndex bool

	// Field is the field name (empty for a whole instance or block).
	Field string

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "Block.Field" - field of the first instance
//   - "Block[2].Field" - field of instance 2
//   - "Block[2]" - all fields of instance 2
//   - "Block" - all instances of the block
//
// Indexes can be decimal or hex (0x prefix).
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	p := &Path{Raw: input}
	rest := input
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		p.Field = rest[dot+1:]
		rest = rest[:dot]
		if !isIdent(p.Field) {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidPath, p.Field)
		}
	}

	if open := strings.IndexByte(rest, '['); open >= 0 {
		if !strings.HasSuffix(rest, "]") {
			return nil, fmt.Errorf("%w: unterminated index in %q", ErrInvalidPath, input)
		}
		idx, err := parseIndex(rest[open+1 : len(rest)-1])
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		p.Index = idx
		p.HasIndex = true
		rest = rest[:open]
	}

	if !isIdent(rest) {
		return nil, fmt.Errorf("%w: block %q", ErrInvalidPath, rest)
	}
	p.Block = rest
	return p, nil
}

// String returns the path in canonical form.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Block)
	if p.HasIndex {
		sb.WriteString("[")
		sb.WriteString(strconv.Itoa(p.Index))
		sb.WriteString("]")
	}
	if p.Field != "" {
		sb.WriteString(".")
		sb.WriteString(p.Field)
	}
	return sb.String()
}

// isIdent reports whether s is a non-empty template identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// parseIndex parses an instance index from decimal or hex string.
func parseIndex(s string) (int, error) {
	var v uint64
	var err error

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 8)
	} else {
		v, err = strconv.ParseUint(s, 10, 8)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return int(v), nil
}
