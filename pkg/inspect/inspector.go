package inspect

import (
	"fmt"

	"github.com/simwire/simwire-go/pkg/codec"
)

// Inspector resolves path expressions against a parsed message.
type Inspector struct {
	msg *codec.Message
}

// NewInspector creates a new Inspector for the given message.
func NewInspector(msg *codec.Message) *Inspector {
	return &Inspector{msg: msg}
}

// Message returns the underlying message.
func (i *Inspector) Message() *codec.Message {
	return i.msg
}

// resolve maps the names in p to their template spelling.
func (i *Inspector) resolve(p *Path) (*Path, error) {
	tmpl := i.msg.Template()
	block, ok := ResolveBlockName(tmpl, p.Block)
	if !ok {
		// Let the codec report the typed error.
		_, err := i.msg.BlockCount(p.Block)
		return nil, err
	}
	out := *p
	out.Block = block
	if p.Field != "" {
		b, _ := tmpl.Block(block)
		if field, ok := ResolveFieldName(b, p.Field); ok {
			out.Field = field
		}
	}
	return &out, nil
}

// Get returns the native value at a field path.
func (i *Inspector) Get(path string) (any, error) {
	p, err := i.fieldPath(path)
	if err != nil {
		return nil, err
	}
	return i.msg.ValueAt(p.Block, p.Index, p.Field)
}

// GetString returns the display form of the value at a field path.
func (i *Inspector) GetString(path string) (string, error) {
	p, err := i.fieldPath(path)
	if err != nil {
		return "", err
	}
	return i.msg.StringValueAt(p.Block, p.Index, p.Field)
}

// Lookup renders whatever a path names: one field, one instance or every
// instance of a block, one line per field as "Block[i].Field = value".
func (i *Inspector) Lookup(path string) ([]string, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	p, err := i.resolve(parsed)
	if err != nil {
		return nil, err
	}

	if p.Field != "" {
		s, err := i.msg.StringValueAt(p.Block, p.Index, p.Field)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s = %s", p, s)}, nil
	}

	insts, err := i.msg.Block(p.Block)
	if err != nil {
		return nil, err
	}
	if p.HasIndex {
		in, err := i.msg.Instance(p.Block, p.Index)
		if err != nil {
			return nil, err
		}
		insts = []*codec.Instance{in}
	}

	var lines []string
	for _, in := range insts {
		for _, f := range in.Block().Fields {
			s, err := in.String(f.Name)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf("%s[%d].%s = %s", p.Block, in.Index(), f.Name, s))
		}
	}
	return lines, nil
}

func (i *Inspector) fieldPath(path string) (*Path, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if parsed.Field == "" {
		return nil, fmt.Errorf("%w: %q names no field", ErrInvalidPath, path)
	}
	return i.resolve(parsed)
}
