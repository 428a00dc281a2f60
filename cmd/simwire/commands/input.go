package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ParseHex decodes a hex dump. Whitespace, ':' separators and a leading
// "0x" are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ':' {
			return -1
		}
		return r
	}, s)
	if clean == "" {
		return nil, fmt.Errorf("empty hex input")
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// ReadInput reads a message buffer from path ("-" for stdin). Files holding
// only hex digits and whitespace are decoded as hex, anything else is taken
// as raw bytes.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if isHexText(data) {
		return ParseHex(string(data))
	}
	return data, nil
}

func isHexText(data []byte) bool {
	text := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
	if text == "" {
		return false
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r), r == ':':
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
