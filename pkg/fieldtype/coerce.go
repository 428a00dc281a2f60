package fieldtype

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/netip"
	"reflect"

	"github.com/google/uuid"
)

// Caller values arrive in many shapes: typed Go values, numbers decoded from
// YAML/JSON documents (int, float64, json.Number) and generic slices. The
// helpers below normalise them before encoding.

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValueOutOfRange, fmt.Sprintf(format, args...))
}

// toInt64 converts a signed or integral value to int64.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(n)
		if u > math.MaxInt64 {
			return 0, outOfRange("%d exceeds int64", u)
		}
		return int64(u), nil
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, outOfRange("%q is not a number", n.String())
		}
		return floatToInt64(f)
	default:
		return 0, outOfRange("cannot use %T as an integer", v)
	}
}

// toUint64 converts a non-negative integral value to uint64.
func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case float32:
		return floatToUint64(float64(n))
	case float64:
		return floatToUint64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, outOfRange("%q is not a number", n.String())
		}
		if i, err := n.Int64(); err == nil {
			if i < 0 {
				return 0, outOfRange("negative value %d for unsigned type", i)
			}
			return uint64(i), nil
		}
		return floatToUint64(f)
	default:
		i, err := toInt64(v)
		if err != nil {
			return 0, err
		}
		if i < 0 {
			return 0, outOfRange("negative value %d for unsigned type", i)
		}
		return uint64(i), nil
	}
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, outOfRange("%v is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, outOfRange("%v exceeds int64", f)
	}
	return int64(f), nil
}

func floatToUint64(f float64) (uint64, error) {
	if f < 0 {
		return 0, outOfRange("negative value %v for unsigned type", f)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, outOfRange("%v is not an integer", f)
	}
	if f >= math.MaxUint64 {
		return 0, outOfRange("%v exceeds uint64", f)
	}
	return uint64(f), nil
}

// toFloat64 converts any numeric value to float64.
func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, outOfRange("%q is not a number", n.String())
		}
		return f, nil
	case int, int8, int16, int32, int64:
		i, _ := toInt64(n)
		return float64(i), nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(n)
		return float64(u), nil
	default:
		return 0, outOfRange("cannot use %T as a number", v)
	}
}

// toFloats converts a numeric tuple of exactly one of the given lengths.
func toFloats(v any, lengths ...int) ([]float64, error) {
	var out []float64
	switch t := v.(type) {
	case Vec3:
		out = []float64{float64(t[0]), float64(t[1]), float64(t[2])}
	case Vec3d:
		out = t[:]
	case Vec4:
		out = []float64{float64(t[0]), float64(t[1]), float64(t[2]), float64(t[3])}
	case Quat:
		out = []float64{float64(t.X), float64(t.Y), float64(t.Z), float64(t.W)}
	case []float64:
		out = t
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, outOfRange("cannot use %T as a vector", v)
		}
		out = make([]float64, rv.Len())
		for i := range out {
			f, err := toFloat64(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
	}
	for _, l := range lengths {
		if len(out) == l {
			return out, nil
		}
	}
	return nil, outOfRange("vector has %d components, want %v", len(out), lengths)
}

// toBytes converts a span value to raw bytes. Strings gain a zero
// terminator when text is true.
func toBytes(v any, text bool) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		if text {
			return Text(b), nil
		}
		return []byte(b), nil
	case nil:
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, outOfRange("cannot use %T as a byte span", v)
	}
	out := make([]byte, rv.Len())
	for i := range out {
		u, err := toUint64(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		if u > math.MaxUint8 {
			return nil, outOfRange("byte %d at offset %d", u, i)
		}
		out[i] = byte(u)
	}
	return out, nil
}

func toUUID(v any) (uuid.UUID, error) {
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case [16]byte:
		return uuid.UUID(id), nil
	case []byte:
		parsed, err := uuid.FromBytes(id)
		if err != nil {
			return uuid.Nil, outOfRange("uuid: %v", err)
		}
		return parsed, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, outOfRange("uuid %q: %v", id, err)
		}
		return parsed, nil
	case fmt.Stringer:
		return toUUID(id.String())
	default:
		return uuid.Nil, outOfRange("cannot use %T as a uuid", v)
	}
}

func toIPv4(v any) (netip.Addr, error) {
	var addr netip.Addr
	switch a := v.(type) {
	case netip.Addr:
		addr = a
	case [4]byte:
		addr = netip.AddrFrom4(a)
	case net.IP:
		ip4 := a.To4()
		if ip4 == nil {
			return netip.Addr{}, outOfRange("%v is not an IPv4 address", a)
		}
		addr = netip.AddrFrom4([4]byte(ip4))
	case string:
		parsed, err := netip.ParseAddr(a)
		if err != nil {
			return netip.Addr{}, outOfRange("address %q: %v", a, err)
		}
		addr = parsed
	default:
		return netip.Addr{}, outOfRange("cannot use %T as an address", v)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, outOfRange("%v is not an IPv4 address", addr)
	}
	return addr, nil
}
