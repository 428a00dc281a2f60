package inspect

import (
	"fmt"
	"strings"

	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/fieldtype"
	"github.com/simwire/simwire-go/pkg/template"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowTypes includes the wire type after each field
	ShowTypes bool

	// ShowHeader includes frequency, number, trust and encoding
	ShowHeader bool

	// StrictStrings fails rendering of unterminated text spans
	StrictStrings bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int

	// HexWidth is the number of bytes per FormatHex line
	HexWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowTypes:   false,
		ShowHeader:  true,
		IndentWidth: 2,
		HexWidth:    16,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a decoded value of type t for display. Text spans are
// quoted; spans that are not printable text are shown as hex.
func (f *Formatter) FormatValue(t fieldtype.Type, value any) string {
	if value == nil {
		return "null"
	}
	if t.IsVariable() {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Sprintf("%v", value)
		}
		if s, err := fieldtype.TextString(b, true); err == nil && isPrintable(s) && len(s) == len(b)-1 {
			return fmt.Sprintf("%q", s)
		}
		if len(b) == 0 {
			return `""`
		}
		return fmt.Sprintf("0x%x", b)
	}
	s, err := fieldtype.DisplayString(t, value, f.StrictStrings)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	if t == fieldtype.Fixed {
		return "0x" + s
	}
	return s
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}

// FormatMessage renders a parsed message block by block.
func (f *Formatter) FormatMessage(m *codec.Message) string {
	var sb strings.Builder
	tmpl := m.Template()
	sb.WriteString(tmpl.Name)
	if f.ShowHeader {
		sb.WriteString(" " + describeHeader(tmpl))
		sb.WriteString(fmt.Sprintf(", %d bytes", m.Size()))
	}
	sb.WriteString("\n")

	for i, insts := range m.Blocks() {
		b := tmpl.Blocks[i]
		if len(insts) == 0 {
			sb.WriteString(f.Indent(1, b.Name+": (none)\n"))
			continue
		}
		for _, in := range insts {
			if b.Shape == template.Single {
				sb.WriteString(f.Indent(1, b.Name+"\n"))
			} else {
				sb.WriteString(f.Indent(1, fmt.Sprintf("%s[%d]\n", b.Name, in.Index())))
			}
			vals := in.Values()
			for j, field := range b.Fields {
				line := fmt.Sprintf("%s: %s", field.Name, f.FormatValue(field.Type, vals[j]))
				if f.ShowTypes {
					line += " (" + typeName(field) + ")"
				}
				sb.WriteString(f.Indent(2, line+"\n"))
			}
		}
	}
	return sb.String()
}

// FormatTemplate renders a template's identity and block layout.
func (f *Formatter) FormatTemplate(m *template.Message) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s", m.Name, describeHeader(m)))
	if m.Deprecated {
		sb.WriteString(", deprecated")
	}
	sb.WriteString("\n")
	if len(m.Blocks) == 0 {
		sb.WriteString(f.Indent(1, "(no blocks)\n"))
		return sb.String()
	}
	for _, b := range m.Blocks {
		shape := b.Shape.String()
		if b.Shape == template.Multiple {
			shape = fmt.Sprintf("%s %d", shape, b.Count)
		}
		sb.WriteString(f.Indent(1, fmt.Sprintf("%s %s\n", b.Name, shape)))
		for _, field := range b.Fields {
			sb.WriteString(f.Indent(2, fmt.Sprintf("%s %s\n", field.Name, typeName(field))))
		}
	}
	return sb.String()
}

// FormatHex renders buf as a hex dump with offsets and an ASCII column.
func (f *Formatter) FormatHex(buf []byte) string {
	width := f.HexWidth
	if width <= 0 {
		width = 16
	}
	var sb strings.Builder
	for off := 0; off < len(buf); off += width {
		end := min(off+width, len(buf))
		line := buf[off:end]

		sb.WriteString(fmt.Sprintf("%04x ", off))
		for i := 0; i < width; i++ {
			if i < len(line) {
				sb.WriteString(fmt.Sprintf(" %02x", line[i]))
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("  |")
		for _, c := range line {
			if c >= 0x20 && c < 0x7F {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// describeHeader returns e.g. "(Low 1, NotTrusted, Zerocoded)".
func describeHeader(m *template.Message) string {
	enc := "Unencoded"
	if m.Zerocoded {
		enc = "Zerocoded"
	}
	num := fmt.Sprintf("%d", m.Number)
	if m.Frequency == template.Fixed {
		num = fmt.Sprintf("0xFFFFFF%02X", m.Number)
	}
	return fmt.Sprintf("(%s %s, %s, %s)", m.Frequency, num, m.Trust, enc)
}

func typeName(field template.Field) string {
	switch field.Type {
	case fieldtype.Fixed:
		return fmt.Sprintf("Fixed %d", field.Size)
	case fieldtype.Variable1:
		return "Variable 1"
	case fieldtype.Variable2:
		return "Variable 2"
	default:
		return field.Type.String()
	}
}
