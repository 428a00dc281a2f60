package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/inspect"
	"github.com/simwire/simwire-go/pkg/template"
)

// Document is the YAML/JSON input of the encode command:
//
//	message: TestMessage
//	blocks:
//	  TestBlock1: {Test1: 1337}
//	  NeighborBlock:
//	    - {Test0: 1, Test1: 2, Test2: 3}
//
// A block given as a single mapping is one instance.
type Document struct {
	Message string
	Blocks  codec.BlockData
}

type rawDocument struct {
	Message string               `yaml:"message"`
	Blocks  map[string]yaml.Node `yaml:"blocks"`
}

// ParseDocument parses an encode document. JSON input is accepted too.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if raw.Message == "" {
		return nil, fmt.Errorf("parsing document: message name required")
	}

	doc := &Document{Message: raw.Message, Blocks: make(codec.BlockData, len(raw.Blocks))}
	for name, node := range raw.Blocks {
		var insts []codec.Fields
		switch node.Kind {
		case yaml.MappingNode:
			var f codec.Fields
			if err := node.Decode(&f); err != nil {
				return nil, fmt.Errorf("block %s: %w", name, err)
			}
			insts = []codec.Fields{f}
		case yaml.SequenceNode:
			if err := node.Decode(&insts); err != nil {
				return nil, fmt.Errorf("block %s: %w", name, err)
			}
		default:
			return nil, fmt.Errorf("block %s: want a mapping or a list of mappings", name)
		}
		doc.Blocks[name] = insts
	}
	return doc, nil
}

// LoadDocument reads an encode document from path ("-" for stdin).
func LoadDocument(path string, stdin io.Reader) (*Document, error) {
	var data []byte
	var err error
	switch {
	case path == "-" && stdin == nil:
		return nil, errors.New("reading document: no standard input")
	case path == "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return ParseDocument(data)
}

// Encode builds doc and writes the hex buffer and its transport flags to w.
// The message name is matched case-insensitively against tbl.
func Encode(w io.Writer, c *codec.Codec, tbl *template.Table, doc *Document) (*codec.Packet, error) {
	name := doc.Message
	if resolved, ok := inspect.ResolveMessageName(tbl, name); ok {
		name = resolved
	}
	pkt, err := c.Build(name, doc.Blocks)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, hex.EncodeToString(pkt.Buffer))
	fmt.Fprintf(w, "size: %d, zerocode: %t, trusted: %t\n", len(pkt.Buffer), pkt.NeedsZeroencode, pkt.CouldBeTrusted)
	return pkt, nil
}
