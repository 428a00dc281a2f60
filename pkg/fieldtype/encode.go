package fieldtype

import (
	"encoding/binary"
	"math"
)

// quatNormTolerance absorbs float rounding in x²+y²+z² of a unit rotation.
const quatNormTolerance = 1e-6

// Text returns s as a zero-terminated text payload.
func Text(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Encode returns the wire bytes for value. width is only consulted for Fixed.
func Encode(t Type, width int, value any) ([]byte, error) {
	return Append(nil, t, width, value)
}

// Append encodes value as type t and appends the wire bytes to dst.
// On error dst is returned unchanged.
func Append(dst []byte, t Type, width int, value any) ([]byte, error) {
	if value == nil && !t.IsVariable() {
		return dst, outOfRange("nil value for %s", t)
	}
	switch t {
	case U8, U16, U32, U64:
		u, err := toUint64(value)
		if err != nil {
			return dst, err
		}
		bits := Size(t, 0) * 8
		if bits < 64 && u >= 1<<bits {
			return dst, outOfRange("%d does not fit %s", u, t)
		}
		return appendUint(dst, Size(t, 0), u), nil

	case S8, S16, S32, S64:
		i, err := toInt64(value)
		if err != nil {
			return dst, err
		}
		bits := Size(t, 0) * 8
		if bits < 64 && (i < -(1<<(bits-1)) || i >= 1<<(bits-1)) {
			return dst, outOfRange("%d does not fit %s", i, t)
		}
		return appendUint(dst, Size(t, 0), uint64(i)), nil

	case F32:
		f, err := toFloat64(value)
		if err != nil {
			return dst, err
		}
		if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return dst, outOfRange("%v does not fit F32", f)
		}
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(f))), nil

	case F64:
		f, err := toFloat64(value)
		if err != nil {
			return dst, err
		}
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(f)), nil

	case Bool:
		switch b := value.(type) {
		case bool:
			if b {
				return append(dst, 1), nil
			}
			return append(dst, 0), nil
		default:
			u, err := toUint64(value)
			if err != nil || u > 1 {
				return dst, outOfRange("cannot use %v as a boolean", value)
			}
			return append(dst, byte(u)), nil
		}

	case UUID:
		id, err := toUUID(value)
		if err != nil {
			return dst, err
		}
		return append(dst, id[:]...), nil

	case IPAddr:
		addr, err := toIPv4(value)
		if err != nil {
			return dst, err
		}
		a4 := addr.As4()
		return append(dst, a4[:]...), nil

	case IPPort:
		u, err := toUint64(value)
		if err != nil {
			return dst, err
		}
		if u > math.MaxUint16 {
			return dst, outOfRange("port %d does not fit IPPORT", u)
		}
		return binary.BigEndian.AppendUint16(dst, uint16(u)), nil

	case Vector3:
		f, err := toFloats(value, 3)
		if err != nil {
			return dst, err
		}
		return appendFloat32s(dst, f), nil

	case Vector4:
		f, err := toFloats(value, 4)
		if err != nil {
			return dst, err
		}
		return appendFloat32s(dst, f), nil

	case Vector3d:
		f, err := toFloats(value, 3)
		if err != nil {
			return dst, err
		}
		for _, c := range f {
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(c))
		}
		return dst, nil

	case Quaternion:
		f, err := toFloats(value, 3, 4)
		if err != nil {
			return dst, err
		}
		if len(f) == 4 {
			q := Quat{X: float32(f[0]), Y: float32(f[1]), Z: float32(f[2]), W: float32(f[3])}.Normalize()
			f = []float64{float64(q.X), float64(q.Y), float64(q.Z)}
		} else if n := f[0]*f[0] + f[1]*f[1] + f[2]*f[2]; n > 1+quatNormTolerance {
			return dst, outOfRange("quaternion x, y, z have squared norm %g, want at most 1", n)
		}
		return appendFloat32s(dst, f), nil

	case Fixed:
		b, err := toBytes(value, false)
		if err != nil {
			return dst, err
		}
		if len(b) != width {
			return dst, outOfRange("fixed span has %d bytes, want %d", len(b), width)
		}
		return append(dst, b...), nil

	case Variable1, Variable2:
		b, err := toBytes(value, true)
		if err != nil {
			return dst, err
		}
		if len(b) > MaxSpan(t) {
			return dst, outOfRange("%d bytes exceed %s limit of %d", len(b), t, MaxSpan(t))
		}
		if t == Variable1 {
			dst = append(dst, byte(len(b)))
		} else {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(len(b)))
		}
		return append(dst, b...), nil

	default:
		return dst, outOfRange("unsupported field type %s", t)
	}
}

func appendUint(dst []byte, size int, u uint64) []byte {
	switch size {
	case 1:
		return append(dst, byte(u))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(u))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(u))
	default:
		return binary.LittleEndian.AppendUint64(dst, u)
	}
}

func appendFloat32s(dst []byte, f []float64) []byte {
	for _, c := range f {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c)))
	}
	return dst
}
