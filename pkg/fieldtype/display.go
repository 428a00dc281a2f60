package fieldtype

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/google/uuid"
)

// TextString interprets a variable span as zero-terminated text and strips
// the terminator. In relaxed mode a span without a terminator is taken whole;
// in strict mode it fails with ErrMalformedString. Bytes after the first zero
// are discarded in either mode.
func TextString(b []byte, strict bool) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i]), nil
	}
	if strict && len(b) > 0 {
		return "", fmt.Errorf("%w: %d bytes without terminator", ErrMalformedString, len(b))
	}
	return string(b), nil
}

// DisplayString renders a decoded value of type t as text.
func DisplayString(t Type, value any, strict bool) (string, error) {
	switch t {
	case Variable1, Variable2:
		b, ok := value.([]byte)
		if !ok {
			return "", mismatch(t, value)
		}
		return TextString(b, strict)
	case Fixed:
		b, ok := value.([]byte)
		if !ok {
			return "", mismatch(t, value)
		}
		return hex.EncodeToString(b), nil
	}

	switch v := value.(type) {
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return formatFloat(float64(v), 32), nil
	case float64:
		return formatFloat(v, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case uuid.UUID:
		return v.String(), nil
	case netip.Addr:
		return v.String(), nil
	case Vec3:
		return v.String(), nil
	case Vec3d:
		return v.String(), nil
	case Vec4:
		return v.String(), nil
	case Quat:
		return v.String(), nil
	default:
		return "", mismatch(t, value)
	}
}

func mismatch(t Type, value any) error {
	return fmt.Errorf("%w: %T is not a decoded %s value", ErrValueOutOfRange, value, t)
}
