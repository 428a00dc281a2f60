package template

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/simwire/simwire-go/pkg/fieldtype"
)

// ParseMsg parses a catalogue in the protocol's native text format:
//
//	version 2.0
//	{
//		TestMessage Low 1 NotTrusted Zerocoded
//		{
//			TestBlock1 Single
//			{ Test1 U32 }
//		}
//		{
//			NeighborBlock Multiple 4
//			{ Test0 U32 }
//		}
//	}
//
// Comments start with "//" and run to the end of the line. Fixed numbers
// may be written in hexadecimal (0xFFFFFFFB).
func ParseMsg(r io.Reader) (*Table, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	p := &msgParser{toks: toks}
	msgs, err := p.catalogue()
	if err != nil {
		return nil, err
	}
	return NewTable(msgs...)
}

// LoadMsg loads and parses a native-format catalogue from a file.
func LoadMsg(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	t, err := ParseMsg(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a catalogue file, choosing the format by extension: .yaml and
// .yml are YAML, anything else is the native text format.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadMsg(path)
	}
}

type token struct {
	text string
	line int
}

func tokenize(r io.Reader) ([]token, error) {
	var toks []token
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.NewReplacer("{", " { ", "}", " } ").Replace(text)
		for _, word := range strings.Fields(text) {
			toks = append(toks, token{text: word, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	return toks, nil
}

type msgParser struct {
	toks []token
	pos  int
}

func (p *msgParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *msgParser) next() (token, error) {
	tok, ok := p.peek()
	if !ok {
		line := 0
		if len(p.toks) > 0 {
			line = p.toks[len(p.toks)-1].line
		}
		return token{}, fmt.Errorf("line %d: unexpected end of catalogue", line)
	}
	p.pos++
	return tok, nil
}

func (p *msgParser) expect(text string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.text != text {
		return fmt.Errorf("line %d: expected %q, got %q", tok.line, text, tok.text)
	}
	return nil
}

func (p *msgParser) number() (uint32, token, error) {
	tok, err := p.next()
	if err != nil {
		return 0, tok, err
	}
	n, err := strconv.ParseUint(tok.text, 0, 32)
	if err != nil {
		return 0, tok, fmt.Errorf("line %d: invalid number %q", tok.line, tok.text)
	}
	return uint32(n), tok, nil
}

func (p *msgParser) catalogue() ([]*Message, error) {
	if tok, ok := p.peek(); ok && strings.EqualFold(tok.text, "version") {
		p.pos++
		if _, err := p.next(); err != nil {
			return nil, err
		}
	}
	var msgs []*Message
	for {
		if _, ok := p.peek(); !ok {
			return msgs, nil
		}
		m, err := p.message()
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
}

func (p *msgParser) message() (*Message, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	freqTok, err := p.next()
	if err != nil {
		return nil, err
	}
	freq, err := ParseFrequency(freqTok.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", freqTok.line, err)
	}
	number, _, err := p.number()
	if err != nil {
		return nil, err
	}
	trustTok, err := p.next()
	if err != nil {
		return nil, err
	}
	trust, err := ParseTrust(trustTok.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", trustTok.line, err)
	}
	encTok, err := p.next()
	if err != nil {
		return nil, err
	}
	zerocoded, err := parseEncoding(encTok.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", encTok.line, err)
	}

	m := &Message{
		Name:      name.text,
		Number:    NormalizeNumber(freq, number),
		Frequency: freq,
		Trust:     trust,
		Zerocoded: zerocoded,
	}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.text {
		case "}":
			return m, nil
		case "{":
			b, err := p.block()
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", m.Name, err)
			}
			m.Blocks = append(m.Blocks, b)
		case "Deprecated", "UDPDeprecated":
			m.Deprecated = true
		case "UDPBlackListed":
		default:
			return nil, fmt.Errorf("line %d: unexpected %q in message %s", tok.line, tok.text, m.Name)
		}
	}
}

func (p *msgParser) block() (*Block, error) {
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	shapeTok, err := p.next()
	if err != nil {
		return nil, err
	}
	shape, err := ParseShape(shapeTok.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", shapeTok.line, err)
	}
	b := &Block{Name: name.text, Shape: shape}
	if shape == Multiple {
		n, _, err := p.number()
		if err != nil {
			return nil, err
		}
		b.Count = int(n)
	}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.text {
		case "}":
			return b, nil
		case "{":
			f, err := p.field()
			if err != nil {
				return nil, fmt.Errorf("block %s: %w", b.Name, err)
			}
			b.Fields = append(b.Fields, f)
		default:
			return nil, fmt.Errorf("line %d: unexpected %q in block %s", tok.line, tok.text, b.Name)
		}
	}
}

func (p *msgParser) field() (Field, error) {
	name, err := p.next()
	if err != nil {
		return Field{}, err
	}
	typeTok, err := p.next()
	if err != nil {
		return Field{}, err
	}
	f := Field{Name: name.text}
	switch typeTok.text {
	case "Variable":
		n, tok, err := p.number()
		if err != nil {
			return Field{}, err
		}
		switch n {
		case 1:
			f.Type = fieldtype.Variable1
		case 2:
			f.Type = fieldtype.Variable2
		default:
			return Field{}, fmt.Errorf("line %d: variable prefix must be 1 or 2, got %d", tok.line, n)
		}
	case "Fixed":
		n, _, err := p.number()
		if err != nil {
			return Field{}, err
		}
		f.Type = fieldtype.Fixed
		f.Size = int(n)
	default:
		ty, err := fieldtype.ParseType(typeTok.text)
		if err != nil {
			return Field{}, fmt.Errorf("line %d: %w", typeTok.line, err)
		}
		f.Type = ty
	}
	if err := p.expect("}"); err != nil {
		return Field{}, err
	}
	return f, nil
}
