package fieldtype

import (
	"errors"
	"fmt"
	"strings"
)

// Field type errors.
var (
	// ErrBufferUnderrun indicates fewer bytes remain than the type requires.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrValueOutOfRange indicates a value does not fit the declared type.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrMalformedString indicates a text span without its zero terminator.
	ErrMalformedString = errors.New("malformed string")
)

// Type identifies a primitive wire type.
type Type uint8

const (
	Invalid Type = iota
	Fixed
	Variable1
	Variable2
	U8
	U16
	U32
	U64
	S8
	S16
	S32
	S64
	F32
	F64
	Vector3
	Vector3d
	Vector4
	Quaternion
	UUID
	Bool
	IPAddr
	IPPort
)

// typeNames holds the catalogue spelling of each type.
var typeNames = [...]string{
	Invalid:    "Invalid",
	Fixed:      "Fixed",
	Variable1:  "Variable1",
	Variable2:  "Variable2",
	U8:         "U8",
	U16:        "U16",
	U32:        "U32",
	U64:        "U64",
	S8:         "S8",
	S16:        "S16",
	S32:        "S32",
	S64:        "S64",
	F32:        "F32",
	F64:        "F64",
	Vector3:    "LLVector3",
	Vector3d:   "LLVector3d",
	Vector4:    "LLVector4",
	Quaternion: "LLQuaternion",
	UUID:       "LLUUID",
	Bool:       "BOOL",
	IPAddr:     "IPADDR",
	IPPort:     "IPPORT",
}

// String returns the catalogue name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsValid returns true for every defined type except Invalid.
func (t Type) IsValid() bool {
	return t > Invalid && int(t) < len(typeNames)
}

// IsVariable returns true for the length-prefixed span types.
func (t Type) IsVariable() bool {
	return t == Variable1 || t == Variable2
}

// ParseType resolves a catalogue type name. Matching is case-insensitive, so
// both "LLUUID" and "lluuid" resolve to UUID.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if i == int(Invalid) {
			continue
		}
		if strings.EqualFold(n, name) {
			return Type(i), nil
		}
	}
	return Invalid, fmt.Errorf("unknown field type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid field type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Size returns the number of wire bytes a value of type t occupies. For Fixed
// the template-declared width is returned. Variable spans return -1 because
// their size depends on the length prefix.
func Size(t Type, width int) int {
	switch t {
	case U8, S8, Bool:
		return 1
	case U16, S16, IPPort:
		return 2
	case U32, S32, F32, IPAddr:
		return 4
	case U64, S64, F64:
		return 8
	case Vector3, Quaternion:
		return 12
	case Vector4, UUID:
		return 16
	case Vector3d:
		return 24
	case Fixed:
		return width
	default:
		return -1
	}
}

// PrefixSize returns the width of the length prefix for variable spans and
// zero for every other type.
func PrefixSize(t Type) int {
	switch t {
	case Variable1:
		return 1
	case Variable2:
		return 2
	default:
		return 0
	}
}

// MaxSpan returns the largest payload a variable span can carry.
func MaxSpan(t Type) int {
	switch t {
	case Variable1:
		return 0xFF
	case Variable2:
		return 0xFFFF
	default:
		return 0
	}
}
