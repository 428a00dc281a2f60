package fieldtype

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"

	"github.com/google/uuid"
)

// Decode reads one value of type t from buf starting at off. It returns the
// value and the number of bytes consumed. Span values are copied so the
// result never aliases buf.
func Decode(t Type, width int, buf []byte, off int) (any, int, error) {
	if off < 0 || off > len(buf) {
		return nil, 0, fmt.Errorf("%w: offset %d outside buffer of %d bytes", ErrBufferUnderrun, off, len(buf))
	}
	rest := buf[off:]

	if t.IsVariable() {
		prefix := PrefixSize(t)
		if len(rest) < prefix {
			return nil, 0, underrun(t, prefix, len(rest))
		}
		n := int(rest[0])
		if t == Variable2 {
			n = int(binary.LittleEndian.Uint16(rest))
		}
		if len(rest) < prefix+n {
			return nil, 0, underrun(t, prefix+n, len(rest))
		}
		span := make([]byte, n)
		copy(span, rest[prefix:prefix+n])
		return span, prefix + n, nil
	}

	size := Size(t, width)
	if size < 0 {
		return nil, 0, fmt.Errorf("%w: unsupported field type %s", ErrValueOutOfRange, t)
	}
	if len(rest) < size {
		return nil, 0, underrun(t, size, len(rest))
	}
	b := rest[:size]

	var v any
	switch t {
	case U8:
		v = b[0]
	case U16:
		v = binary.LittleEndian.Uint16(b)
	case U32:
		v = binary.LittleEndian.Uint32(b)
	case U64:
		v = binary.LittleEndian.Uint64(b)
	case S8:
		v = int8(b[0])
	case S16:
		v = int16(binary.LittleEndian.Uint16(b))
	case S32:
		v = int32(binary.LittleEndian.Uint32(b))
	case S64:
		v = int64(binary.LittleEndian.Uint64(b))
	case F32:
		v = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case F64:
		v = math.Float64frombits(binary.LittleEndian.Uint64(b))
	case Bool:
		v = b[0] != 0
	case UUID:
		v = uuid.UUID(b)
	case IPAddr:
		v = netip.AddrFrom4([4]byte(b))
	case IPPort:
		v = binary.BigEndian.Uint16(b)
	case Vector3:
		v = Vec3{float32At(b, 0), float32At(b, 4), float32At(b, 8)}
	case Vector4:
		v = Vec4{float32At(b, 0), float32At(b, 4), float32At(b, 8), float32At(b, 12)}
	case Vector3d:
		v = Vec3d{float64At(b, 0), float64At(b, 8), float64At(b, 16)}
	case Quaternion:
		v = quatFromXYZ(float32At(b, 0), float32At(b, 4), float32At(b, 8))
	case Fixed:
		span := make([]byte, size)
		copy(span, b)
		v = span
	}
	return v, size, nil
}

func underrun(t Type, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, %d remain", ErrBufferUnderrun, t, need, have)
}

func float32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func float64At(b []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off:]))
}
