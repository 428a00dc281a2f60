package template

import (
	"fmt"
	"sort"
)

// Lookup resolves message templates by name (encode path) or by frequency
// and number (decode path).
type Lookup interface {
	ByName(name string) (*Message, bool)
	ByNumber(freq Frequency, number uint32) (*Message, bool)
}

type numberKey struct {
	freq   Frequency
	number uint32
}

// Table is an immutable template catalogue. It is safe for concurrent use
// because nothing mutates it after NewTable returns.
type Table struct {
	messages []*Message
	byName   map[string]*Message
	byNumber map[numberKey]*Message
}

// NewTable validates the messages and indexes them. Names and
// (frequency, number) pairs must be unique. The table takes ownership of
// the messages; callers must not modify them afterwards.
func NewTable(msgs ...*Message) (*Table, error) {
	t := &Table{
		messages: make([]*Message, 0, len(msgs)),
		byName:   make(map[string]*Message, len(msgs)),
		byNumber: make(map[numberKey]*Message, len(msgs)),
	}
	for _, m := range msgs {
		if m == nil {
			continue
		}
		if err := m.validate(); err != nil {
			return nil, err
		}
		if prev, dup := t.byName[m.Name]; dup {
			return nil, fmt.Errorf("duplicate message name %s (%s and %s)", m.Name, prev.ID(), m.ID())
		}
		key := numberKey{m.Frequency, m.Number}
		if prev, dup := t.byNumber[key]; dup {
			return nil, fmt.Errorf("messages %s and %s share number %s", prev.Name, m.Name, m.ID())
		}
		t.byName[m.Name] = m
		t.byNumber[key] = m
		t.messages = append(t.messages, m)
	}
	return t, nil
}

// ByName returns the template with the given name.
func (t *Table) ByName(name string) (*Message, bool) {
	m, ok := t.byName[name]
	return m, ok
}

// ByNumber returns the template with the given frequency and number.
func (t *Table) ByNumber(freq Frequency, number uint32) (*Message, bool) {
	m, ok := t.byNumber[numberKey{freq, number}]
	return m, ok
}

// Len returns the number of templates.
func (t *Table) Len() int {
	return len(t.messages)
}

// Messages returns the templates in catalogue order.
func (t *Table) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Names returns the template names sorted alphabetically.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.messages))
	for _, m := range t.messages {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface satisfaction check.
var _ Lookup = (*Table)(nil)
