package codec

import (
	"github.com/simwire/simwire-go/pkg/template"
)

// Message is a parsed message. It is immutable and holds no reference to the
// buffer it was parsed from.
type Message struct {
	tmpl   *template.Message
	blocks [][]*Instance // indexed like tmpl.Blocks
	size   int
}

// Name returns the template name.
func (m *Message) Name() string {
	return m.tmpl.Name
}

// Template returns the template the message was parsed with.
func (m *Message) Template() *template.Message {
	return m.tmpl
}

// Size returns the number of bytes the message occupied, header included.
func (m *Message) Size() int {
	return m.size
}

// Blocks returns the instances of every block in template order.
func (m *Message) Blocks() [][]*Instance {
	out := make([][]*Instance, len(m.blocks))
	for i, insts := range m.blocks {
		out[i] = append([]*Instance(nil), insts...)
	}
	return out
}

// Block returns the instances of the named block in wire order.
func (m *Message) Block(name string) ([]*Instance, error) {
	insts, err := m.block(name)
	if err != nil {
		return nil, err
	}
	return append([]*Instance(nil), insts...), nil
}

// BlockCount returns the number of instances of the named block.
func (m *Message) BlockCount(name string) (int, error) {
	insts, err := m.block(name)
	if err != nil {
		return 0, err
	}
	return len(insts), nil
}

// Instance returns instance i of the named block.
func (m *Message) Instance(block string, i int) (*Instance, error) {
	insts, err := m.block(block)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(insts) {
		e := newError(KindIndexOutOfRange, "block has %d instances", len(insts))
		e.Message, e.Block, e.Index = m.tmpl.Name, block, i
		return nil, e
	}
	return insts[i], nil
}

// Value returns a field of the first instance of a block.
func (m *Message) Value(block, field string) (any, error) {
	return m.ValueAt(block, 0, field)
}

// ValueAt returns a field of instance i of a block.
func (m *Message) ValueAt(block string, i int, field string) (any, error) {
	in, err := m.Instance(block, i)
	if err != nil {
		return nil, err
	}
	v, err := in.Get(field)
	return v, withMessage(err, m.tmpl.Name)
}

// Values returns fields of the first instance of a block keyed by name.
// With no field names every field is returned.
func (m *Message) Values(block string, fields ...string) (map[string]any, error) {
	return m.ValuesAt(block, 0, fields...)
}

// ValuesAt is like Values for instance i.
func (m *Message) ValuesAt(block string, i int, fields ...string) (map[string]any, error) {
	in, err := m.Instance(block, i)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return in.All(), nil
	}
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, err := in.Get(f)
		if err != nil {
			return nil, withMessage(err, m.tmpl.Name)
		}
		out[f] = v
	}
	return out, nil
}

// StringValue returns the display form of a field of the first instance.
func (m *Message) StringValue(block, field string) (string, error) {
	return m.StringValueAt(block, 0, field)
}

// StringValueAt returns the display form of a field of instance i.
func (m *Message) StringValueAt(block string, i int, field string) (string, error) {
	in, err := m.Instance(block, i)
	if err != nil {
		return "", err
	}
	s, err := in.String(field)
	return s, withMessage(err, m.tmpl.Name)
}

// StringValues is like Values but renders every value as text.
func (m *Message) StringValues(block string, fields ...string) (map[string]string, error) {
	return m.StringValuesAt(block, 0, fields...)
}

// StringValuesAt is like StringValues for instance i.
func (m *Message) StringValuesAt(block string, i int, fields ...string) (map[string]string, error) {
	in, err := m.Instance(block, i)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		out, err := in.Strings()
		return out, withMessage(err, m.tmpl.Name)
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		s, err := in.String(f)
		if err != nil {
			return nil, withMessage(err, m.tmpl.Name)
		}
		out[f] = s
	}
	return out, nil
}

// Data returns the message content in the form Build accepts, so that
// Build(m.Name(), m.Data()) reproduces the parsed buffer.
func (m *Message) Data() BlockData {
	data := make(BlockData, len(m.blocks))
	for i, b := range m.tmpl.Blocks {
		rows := make([]Fields, len(m.blocks[i]))
		for j, in := range m.blocks[i] {
			rows[j] = in.Fields()
		}
		data[b.Name] = rows
	}
	return data
}

// Getter reads one field of a block instance.
type Getter func(field string) (any, error)

// MapBlock calls fn once per instance of a block, in wire order, and returns
// the results. get is bound to the instance being visited.
func MapBlock[T any](m *Message, block string, fn func(get Getter, i int) T) ([]T, error) {
	insts, err := m.block(block)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(insts))
	for i, in := range insts {
		get := func(field string) (any, error) {
			v, err := in.Get(field)
			return v, withMessage(err, m.tmpl.Name)
		}
		out[i] = fn(get, i)
	}
	return out, nil
}

func (m *Message) block(name string) ([]*Instance, error) {
	i, ok := m.tmpl.BlockIndex(name)
	if !ok {
		e := newError(KindUnknownBlock, "")
		e.Message, e.Block = m.tmpl.Name, name
		return nil, e
	}
	return m.blocks[i], nil
}
