// Package interactive provides the readline shell of the simwire command.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/simwire/simwire-go/cmd/simwire/commands"
	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/inspect"
	"github.com/simwire/simwire-go/pkg/template"
)

// Shell runs decode, encode and template commands against one codec.
type Shell struct {
	codec *codec.Codec
	table *template.Table
	out   io.Writer

	// last is the most recently decoded message, queried by get.
	last *inspect.Inspector
}

// New creates a shell writing its output to out.
func New(c *codec.Codec, tbl *template.Table, out io.Writer) *Shell {
	return &Shell{codec: c, table: tbl, out: out}
}

// completer offers message names after show.
func (s *Shell) completer() readline.AutoCompleter {
	names := readline.PcItemDynamic(func(string) []string {
		return s.table.Names()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("decode"),
		readline.PcItem("encode"),
		readline.PcItem("get"),
		readline.PcItem("show", names),
		readline.PcItem("list"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// Run reads commands until exit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "simwire> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "help", "?":
		s.printHelp()

	case "decode", "d":
		s.cmdDecode(rest)

	case "encode", "e":
		s.cmdEncode(rest)

	case "get", "g":
		s.cmdGet(rest)

	case "show", "s":
		s.cmdShow(rest)

	case "list", "l", "ls":
		if commands.ListTemplates(s.out, s.table, rest) == 0 {
			fmt.Fprintf(s.out, "No messages match %q\n", rest)
		}

	case "exit", "quit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Simwire Shell Commands:
  Messages:
    decode <hex>         - Decode a message buffer
    encode <file>        - Encode a YAML/JSON document from a file
    encode {...}         - Encode an inline JSON document
    get <path>           - Read a field of the last decoded message

  Templates:
    list [prefix]        - List message templates
    show <message>       - Show a template's blocks and fields

  General:
    help                 - Show this help
    exit                 - Exit the shell

  Path Format:
    Block[index].Field - e.g., NeighborBlock[2].Test1 (index defaults to 0)`)
}

func (s *Shell) cmdDecode(arg string) {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: decode <hex>")
		return
	}
	buf, err := commands.ParseHex(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	msg, err := commands.Decode(s.out, s.codec, buf, commands.DecodeOptions{})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.last = inspect.NewInspector(msg)
}

func (s *Shell) cmdEncode(arg string) {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: encode <file> | encode {\"message\": ..., \"blocks\": {...}}")
		return
	}
	var doc *commands.Document
	var err error
	switch {
	case arg == "-":
		fmt.Fprintln(s.out, "Error: encode - is not supported in the shell; pass a file or inline JSON")
		return
	case strings.HasPrefix(arg, "{"):
		doc, err = commands.ParseDocument([]byte(arg))
	default:
		doc, err = commands.LoadDocument(arg, nil)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if _, err := commands.Encode(s.out, s.codec, s.table, doc); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdGet(arg string) {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: get <path>")
		return
	}
	if s.last == nil {
		fmt.Fprintln(s.out, "No message decoded yet")
		return
	}
	lines, err := s.last.Lookup(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}

func (s *Shell) cmdShow(arg string) {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: show <message>")
		return
	}
	if err := commands.ShowTemplate(s.out, s.table, arg); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
