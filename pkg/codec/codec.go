package codec

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/simwire/simwire-go/pkg/log"
	"github.com/simwire/simwire-go/pkg/template"
)

// Packet is the result of Build.
type Packet struct {
	// Buffer holds the header followed by every block in template order.
	Buffer []byte

	// NeedsZeroencode is copied from the template: the transport must
	// zero-encode Buffer before sending it.
	NeedsZeroencode bool

	// CouldBeTrusted is copied from the template: the message belongs on a
	// trusted circuit.
	CouldBeTrusted bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithLenientTrailingBytes tolerates bytes after the last block. They are
// reported as a warning instead of failing the parse.
func WithLenientTrailingBytes() Option {
	return func(c *Codec) {
		c.lenient = true
	}
}

// WithStrictStrings makes text rendering fail with ErrMalformedString when a
// variable span has no zero terminator.
func WithStrictStrings() Option {
	return func(c *Codec) {
		c.strictStrings = true
	}
}

// WithLogger sets the operational logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProtocolLogger sets the logger receiving one event per parsed or built
// message.
func WithProtocolLogger(l log.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.protocolLogger = l
		}
	}
}

// WithCircuitID tags protocol events with a circuit identifier.
func WithCircuitID(id string) Option {
	return func(c *Codec) {
		c.circuitID = id
	}
}

// Codec parses and builds messages against a template catalogue.
// It is safe for concurrent use.
type Codec struct {
	lookup template.Lookup

	lenient        bool
	strictStrings  bool
	logger         *slog.Logger
	protocolLogger log.Logger
	circuitID      string

	now func() time.Time
}

// New creates a Codec resolving templates through lookup.
func New(lookup template.Lookup, opts ...Option) *Codec {
	c := &Codec{
		lookup:         lookup,
		logger:         slog.Default(),
		protocolLogger: log.NoopLogger{},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lenient reports whether trailing bytes are tolerated.
func (c *Codec) Lenient() bool {
	return c.lenient
}

// Parse decodes a zero-decoded buffer into a Message.
func (c *Codec) Parse(buf []byte) (*Message, error) {
	m, trailing, err := c.parse(buf)
	if err != nil {
		c.logError(log.DirectionIn, "parse", buf, err)
		return nil, err
	}
	if trailing > 0 {
		c.logger.Warn("ignoring trailing bytes",
			"message", m.Name(),
			"trailing", trailing,
			"size", len(buf))
		c.emit(log.Event{
			Direction: log.DirectionIn,
			Category:  log.CategoryWarning,
			Error: &log.ErrorEventData{
				Layer:       log.LayerWire,
				Message:     fmt.Sprintf("%d trailing bytes ignored", trailing),
				Kind:        KindTrailingBytes.String(),
				Context:     "parse",
				MessageName: m.Name(),
			},
		})
	}
	c.emit(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryMessage,
		Message:   messageEvent(m.tmpl, m.size, m.blockCounts()),
	})
	return m, nil
}

func (c *Codec) parse(buf []byte) (*Message, int, error) {
	freq, number, off, err := DecodeHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	tmpl, ok := c.lookup.ByNumber(freq, number)
	if !ok {
		return nil, 0, newError(KindUnknownMessageNumber, "%s %d", freq, number)
	}

	m := &Message{tmpl: tmpl, blocks: make([][]*Instance, len(tmpl.Blocks))}
	for i, b := range tmpl.Blocks {
		insts, n, err := decodeBlock(b, buf, off, c.strictStrings)
		if err != nil {
			return nil, 0, withMessage(err, tmpl.Name)
		}
		m.blocks[i] = insts
		off += n
	}
	m.size = off

	if trailing := len(buf) - off; trailing > 0 {
		if !c.lenient {
			e := newError(KindTrailingBytes, "%d bytes after offset %d", trailing, off)
			e.Message = tmpl.Name
			return nil, 0, e
		}
		return m, trailing, nil
	}
	return m, 0, nil
}

// Build encodes a message from block data. Blocks are emitted in template
// order; absent blocks are only accepted for Variable blocks, which then
// encode zero instances.
func (c *Codec) Build(name string, data BlockData) (*Packet, error) {
	pkt, err := c.build(name, data)
	if err != nil {
		c.logError(log.DirectionOut, "build", nil, err)
		return nil, err
	}
	return pkt, nil
}

func (c *Codec) build(name string, data BlockData) (*Packet, error) {
	tmpl, ok := c.lookup.ByName(name)
	if !ok {
		e := newError(KindUnknownMessageName, "%q", name)
		return nil, e
	}
	if extra := unknownBlock(tmpl, data); extra != "" {
		e := newError(KindUnknownBlock, "")
		e.Message, e.Block = tmpl.Name, extra
		return nil, e
	}

	buf, err := appendHeader(nil, tmpl)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(tmpl.Blocks))
	for _, b := range tmpl.Blocks {
		rows, present := data[b.Name]
		if !present && b.MinInstances() > 0 {
			e := newError(KindMissingBlock, "")
			e.Message, e.Block = tmpl.Name, b.Name
			return nil, e
		}
		if buf, err = appendBlock(buf, b, rows); err != nil {
			return nil, withMessage(err, tmpl.Name)
		}
		counts[b.Name] = len(rows)
	}

	c.emit(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryMessage,
		Message:   messageEvent(tmpl, len(buf), counts),
	})
	return &Packet{
		Buffer:          buf,
		NeedsZeroencode: tmpl.Zerocoded,
		CouldBeTrusted:  tmpl.IsTrusted(),
	}, nil
}

// unknownBlock returns the first block name (in sorted order) of data that
// the template does not declare, or "".
func unknownBlock(tmpl *template.Message, data BlockData) string {
	var names []string
	for name := range data {
		if _, ok := tmpl.BlockIndex(name); !ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

func (m *Message) blockCounts() map[string]int {
	counts := make(map[string]int, len(m.blocks))
	for i, b := range m.tmpl.Blocks {
		counts[b.Name] = len(m.blocks[i])
	}
	return counts
}

func messageEvent(tmpl *template.Message, size int, counts map[string]int) *log.MessageEvent {
	return &log.MessageEvent{
		Name:      tmpl.Name,
		Number:    tmpl.Number,
		Frequency: tmpl.Frequency.String(),
		Size:      size,
		Zerocoded: tmpl.Zerocoded,
		Trusted:   tmpl.IsTrusted(),
		Blocks:    counts,
	}
}

func (c *Codec) emit(ev log.Event) {
	ev.Timestamp = c.now()
	ev.CircuitID = c.circuitID
	ev.Layer = log.LayerWire
	c.protocolLogger.Log(ev)
}

func (c *Codec) logError(dir log.Direction, op string, buf []byte, err error) {
	data := &log.ErrorEventData{
		Layer:   log.LayerWire,
		Message: err.Error(),
		Context: op,
	}
	var ce *Error
	if errors.As(err, &ce) {
		data.Kind = ce.Kind.String()
		data.MessageName = ce.Message
		data.Block = ce.Block
		data.Field = ce.Field
	}
	c.logger.Debug("codec failure", "op", op, "kind", data.Kind, "error", err)

	ev := log.Event{Direction: dir, Category: log.CategoryError, Error: data}
	if buf != nil {
		ev.Frame = log.NewFrameEvent(buf)
	}
	c.emit(ev)
}
