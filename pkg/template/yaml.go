package template

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simwire/simwire-go/pkg/fieldtype"
)

// RawCatalogue is the YAML form of a template catalogue.
type RawCatalogue struct {
	Version  string       `yaml:"version"`
	Messages []RawMessage `yaml:"messages"`
}

// RawMessage is the YAML form of one message template.
type RawMessage struct {
	Name       string     `yaml:"name"`
	Frequency  string     `yaml:"frequency"`
	Number     uint32     `yaml:"number"`
	Trust      string     `yaml:"trust"`
	Encoding   string     `yaml:"encoding"`
	Deprecated bool       `yaml:"deprecated,omitempty"`
	Blocks     []RawBlock `yaml:"blocks,omitempty"`
}

// RawBlock is the YAML form of a block descriptor.
type RawBlock struct {
	Name   string     `yaml:"name"`
	Shape  string     `yaml:"shape"`
	Count  int        `yaml:"count,omitempty"`
	Fields []RawField `yaml:"fields"`
}

// RawField is the YAML form of a field descriptor.
type RawField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Size int    `yaml:"size,omitempty"`
}

// ParseYAML parses a YAML catalogue into a validated Table.
func ParseYAML(data []byte) (*Table, error) {
	var raw RawCatalogue
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing template catalogue: %w", err)
	}
	msgs, err := rawMessages(raw.Messages).toMessages()
	if err != nil {
		return nil, err
	}
	return NewTable(msgs...)
}

// LoadYAML loads and parses a YAML catalogue from a file.
func LoadYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ToRaw converts templates back to their YAML form.
func ToRaw(msgs []*Message) RawCatalogue {
	raw := RawCatalogue{Version: "2.0"}
	for _, m := range msgs {
		rm := RawMessage{
			Name:       m.Name,
			Frequency:  m.Frequency.String(),
			Number:     m.Number,
			Trust:      m.Trust.String(),
			Encoding:   "Unencoded",
			Deprecated: m.Deprecated,
		}
		if m.Zerocoded {
			rm.Encoding = "Zerocoded"
		}
		for _, b := range m.Blocks {
			rb := RawBlock{Name: b.Name, Shape: b.Shape.String(), Count: b.Count}
			for _, f := range b.Fields {
				rb.Fields = append(rb.Fields, RawField{Name: f.Name, Type: f.Type.String(), Size: f.Size})
			}
			rm.Blocks = append(rm.Blocks, rb)
		}
		raw.Messages = append(raw.Messages, rm)
	}
	return raw
}

type rawMessages []RawMessage

func (rs rawMessages) toMessages() ([]*Message, error) {
	msgs := make([]*Message, 0, len(rs))
	for _, rm := range rs {
		m, err := rm.toMessage()
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (rm RawMessage) toMessage() (*Message, error) {
	freq, err := ParseFrequency(rm.Frequency)
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", rm.Name, err)
	}
	trust, err := ParseTrust(rm.Trust)
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", rm.Name, err)
	}
	zerocoded, err := parseEncoding(rm.Encoding)
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", rm.Name, err)
	}

	m := &Message{
		Name:       rm.Name,
		Number:     NormalizeNumber(freq, rm.Number),
		Frequency:  freq,
		Trust:      trust,
		Zerocoded:  zerocoded,
		Deprecated: rm.Deprecated,
	}
	for _, rb := range rm.Blocks {
		shape, err := ParseShape(rb.Shape)
		if err != nil {
			return nil, fmt.Errorf("message %s block %s: %w", rm.Name, rb.Name, err)
		}
		b := &Block{Name: rb.Name, Shape: shape, Count: rb.Count}
		for _, rf := range rb.Fields {
			ty, err := fieldtype.ParseType(rf.Type)
			if err != nil {
				return nil, fmt.Errorf("message %s block %s field %s: %w", rm.Name, rb.Name, rf.Name, err)
			}
			b.Fields = append(b.Fields, Field{Name: rf.Name, Type: ty, Size: rf.Size})
		}
		m.Blocks = append(m.Blocks, b)
	}
	return m, nil
}

func parseEncoding(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "Zerocoded"):
		return true, nil
	case s == "" || strings.EqualFold(s, "Unencoded"):
		return false, nil
	default:
		return false, fmt.Errorf("unknown encoding %q", s)
	}
}
