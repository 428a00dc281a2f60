package codec

import (
	"sync"

	"github.com/simwire/simwire-go/pkg/template"
)

var (
	defaultOnce  sync.Once
	defaultCodec *Codec
	defaultErr   error
)

// Default returns a strict Codec over the embedded template catalogue.
func Default() (*Codec, error) {
	defaultOnce.Do(func() {
		tbl, err := template.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultCodec = New(tbl)
	})
	return defaultCodec, defaultErr
}

// Parse decodes buf with the default Codec.
func Parse(buf []byte) (*Message, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Parse(buf)
}

// Build encodes a message with the default Codec.
func Build(name string, data BlockData) (*Packet, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Build(name, data)
}
