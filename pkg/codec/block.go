package codec

import (
	"bytes"
	"sort"

	"github.com/simwire/simwire-go/pkg/fieldtype"
	"github.com/simwire/simwire-go/pkg/template"
)

// MaxVariableInstances is the largest instance count a Variable block can
// carry in its count byte.
const MaxVariableInstances = 0xFF

// Fields holds the values of one block instance, keyed by field name.
type Fields map[string]any

// BlockData holds the instances of every block of a message, keyed by block
// name.
type BlockData map[string][]Fields

// Instance is one decoded block instance. Values are kept in template order.
type Instance struct {
	block  *template.Block
	index  int
	values []any
	strict bool
}

// Block returns the block descriptor.
func (in *Instance) Block() *template.Block {
	return in.block
}

// Index returns the position of the instance within its block.
func (in *Instance) Index() int {
	return in.index
}

// Get returns the decoded value of a field.
func (in *Instance) Get(field string) (any, error) {
	i, ok := in.block.FieldIndex(field)
	if !ok {
		return nil, in.errorf(KindUnknownField, field, "")
	}
	return cloneValue(in.values[i]), nil
}

// String returns the display form of a field.
func (in *Instance) String(field string) (string, error) {
	i, ok := in.block.FieldIndex(field)
	if !ok {
		return "", in.errorf(KindUnknownField, field, "")
	}
	return in.display(i)
}

// Values returns all values in template order.
func (in *Instance) Values() []any {
	out := make([]any, len(in.values))
	for i, v := range in.values {
		out[i] = cloneValue(v)
	}
	return out
}

// All returns all values keyed by field name.
func (in *Instance) All() map[string]any {
	out := make(map[string]any, len(in.values))
	for i, f := range in.block.Fields {
		out[f.Name] = cloneValue(in.values[i])
	}
	return out
}

// cloneValue copies byte spans so callers cannot reach decoded state.
func cloneValue(v any) any {
	if b, ok := v.([]byte); ok {
		return bytes.Clone(b)
	}
	return v
}

// Strings returns the display form of every field keyed by field name.
func (in *Instance) Strings() (map[string]string, error) {
	out := make(map[string]string, len(in.values))
	for i, f := range in.block.Fields {
		s, err := in.display(i)
		if err != nil {
			return nil, err
		}
		out[f.Name] = s
	}
	return out, nil
}

// Fields returns the instance as encoder input.
func (in *Instance) Fields() Fields {
	return Fields(in.All())
}

func (in *Instance) display(i int) (string, error) {
	f := in.block.Fields[i]
	s, err := fieldtype.DisplayString(f.Type, in.values[i], in.strict)
	if err != nil {
		e := in.errorf(fieldKind(err), f.Name, "")
		e.Err = err
		return "", e
	}
	return s, nil
}

func (in *Instance) errorf(kind Kind, field, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Block = in.block.Name
	e.Index = in.index
	e.Field = field
	return e
}

// EncodeBlock serializes the instances of one block, including the count
// byte of a Variable block.
func EncodeBlock(b *template.Block, rows []Fields) ([]byte, error) {
	return appendBlock(nil, b, rows)
}

func appendBlock(dst []byte, b *template.Block, rows []Fields) ([]byte, error) {
	blockErr := func(kind Kind, format string, args ...any) *Error {
		e := newError(kind, format, args...)
		e.Block = b.Name
		return e
	}

	switch b.Shape {
	case template.Single:
		if len(rows) != 1 {
			return dst, blockErr(KindBlockCountMismatch, "single block needs 1 instance, got %d", len(rows))
		}
	case template.Multiple:
		if len(rows) != b.Count {
			return dst, blockErr(KindBlockCountMismatch, "multiple block needs %d instances, got %d", b.Count, len(rows))
		}
	case template.Variable:
		if len(rows) > MaxVariableInstances {
			return dst, blockErr(KindBlockCountOverflow, "%d instances exceed %d", len(rows), MaxVariableInstances)
		}
		dst = append(dst, byte(len(rows)))
	default:
		return dst, blockErr(KindUnknown, "invalid shape %d", b.Shape)
	}

	for i, row := range rows {
		if name, ok := unknownField(b, row); ok {
			e := blockErr(KindUnknownField, "")
			e.Index, e.Field = i, name
			return dst, e
		}
		for _, f := range b.Fields {
			v, ok := row[f.Name]
			if !ok {
				e := blockErr(KindMissingField, "")
				e.Index, e.Field = i, f.Name
				return dst, e
			}
			var err error
			if dst, err = fieldtype.Append(dst, f.Type, f.Size, v); err != nil {
				e := blockErr(fieldKind(err), "")
				e.Index, e.Field, e.Err = i, f.Name, err
				return dst, e
			}
		}
	}
	return dst, nil
}

// unknownField returns the first field name (in sorted order) of row that
// the block does not declare.
func unknownField(b *template.Block, row Fields) (string, bool) {
	var names []string
	for name := range row {
		if _, ok := b.FieldIndex(name); !ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// DecodeBlock reads the instances of one block from buf starting at off.
// It returns the instances and the number of bytes consumed.
func DecodeBlock(b *template.Block, buf []byte, off int) ([]*Instance, int, error) {
	return decodeBlock(b, buf, off, false)
}

func decodeBlock(b *template.Block, buf []byte, off int, strict bool) ([]*Instance, int, error) {
	start := off
	count := b.MinInstances()
	if b.Shape == template.Variable {
		if off >= len(buf) {
			e := newError(KindBufferUnderrun, "block count byte at offset %d", off)
			e.Block = b.Name
			return nil, 0, e
		}
		count = int(buf[off])
		off++
	}

	insts := make([]*Instance, count)
	for i := range insts {
		in := &Instance{block: b, index: i, values: make([]any, len(b.Fields)), strict: strict}
		for j, f := range b.Fields {
			v, n, err := fieldtype.Decode(f.Type, f.Size, buf, off)
			if err != nil {
				e := in.errorf(fieldKind(err), f.Name, "")
				e.Err = err
				return nil, 0, e
			}
			in.values[j] = v
			off += n
		}
		insts[i] = in
	}
	return insts, off - start, nil
}
