package codec

import (
	"encoding/binary"

	"github.com/simwire/simwire-go/pkg/template"
)

// Header bytes per frequency class.
const (
	highHeaderSize   = 1
	mediumHeaderSize = 2
	lowHeaderSize    = 4
	fixedHeaderSize  = 4
)

// HeaderSize returns the number of header bytes used by a frequency class.
func HeaderSize(f template.Frequency) int {
	switch f {
	case template.High:
		return highHeaderSize
	case template.Medium:
		return mediumHeaderSize
	case template.Low:
		return lowHeaderSize
	default:
		return fixedHeaderSize
	}
}

// EncodeHeader returns the message-number prefix for m:
//
//	High    NN
//	Medium  FF NN
//	Low     FF FF NN NN  (big-endian)
//	Fixed   FF FF FF NN
func EncodeHeader(m *template.Message) ([]byte, error) {
	return appendHeader(make([]byte, 0, HeaderSize(m.Frequency)), m)
}

func appendHeader(dst []byte, m *template.Message) ([]byte, error) {
	n := m.Number
	outOfRange := func(hi uint32) error {
		e := newError(KindValueOutOfRange, "%s number %d outside 1-%d", m.Frequency, n, hi)
		e.Message = m.Name
		return e
	}

	switch m.Frequency {
	case template.High:
		if n < 1 || n > 0xFE {
			return dst, outOfRange(0xFE)
		}
		return append(dst, byte(n)), nil
	case template.Medium:
		if n < 1 || n > 0xFE {
			return dst, outOfRange(0xFE)
		}
		return append(dst, 0xFF, byte(n)), nil
	case template.Low:
		if n < 1 || n > 0xFEFF {
			return dst, outOfRange(0xFEFF)
		}
		dst = append(dst, 0xFF, 0xFF)
		return binary.BigEndian.AppendUint16(dst, uint16(n)), nil
	case template.Fixed:
		n = template.NormalizeNumber(template.Fixed, n)
		if n > 0xFF {
			e := newError(KindValueOutOfRange, "Fixed number %#x does not fit one byte", m.Number)
			e.Message = m.Name
			return dst, e
		}
		return append(dst, 0xFF, 0xFF, 0xFF, byte(n)), nil
	default:
		e := newError(KindValueOutOfRange, "invalid frequency %d", m.Frequency)
		e.Message = m.Name
		return dst, e
	}
}

// DecodeHeader reads the message-number prefix of buf. The count of leading
// 0xFF bytes (capped at three) selects the frequency class.
func DecodeHeader(buf []byte) (template.Frequency, uint32, int, error) {
	need := func(n int) error {
		if len(buf) < n {
			return newError(KindBufferUnderrun, "header needs %d bytes, have %d", n, len(buf))
		}
		return nil
	}

	if err := need(1); err != nil {
		return 0, 0, 0, err
	}
	if buf[0] != 0xFF {
		return template.High, uint32(buf[0]), highHeaderSize, nil
	}
	if err := need(2); err != nil {
		return 0, 0, 0, err
	}
	if buf[1] != 0xFF {
		return template.Medium, uint32(buf[1]), mediumHeaderSize, nil
	}
	if err := need(4); err != nil {
		return 0, 0, 0, err
	}
	if buf[2] != 0xFF {
		return template.Low, uint32(binary.BigEndian.Uint16(buf[2:])), lowHeaderSize, nil
	}
	return template.Fixed, uint32(buf[3]), fixedHeaderSize, nil
}
