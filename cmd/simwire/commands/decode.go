package commands

import (
	"fmt"
	"io"

	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/inspect"
)

// DecodeOptions controls decode output.
type DecodeOptions struct {
	ShowTypes bool
	Dump      bool
}

// Decode parses buf and writes the message tree to w.
func Decode(w io.Writer, c *codec.Codec, buf []byte, opts DecodeOptions) (*codec.Message, error) {
	msg, err := c.Parse(buf)
	if err != nil {
		return nil, err
	}

	f := inspect.NewFormatter()
	f.ShowTypes = opts.ShowTypes
	if opts.Dump {
		fmt.Fprint(w, f.FormatHex(buf))
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, f.FormatMessage(msg))
	if extra := len(buf) - msg.Size(); extra > 0 {
		fmt.Fprintf(w, "(ignored %d trailing bytes)\n", extra)
	}
	return msg, nil
}
