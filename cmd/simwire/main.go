// Command simwire decodes, encodes and inspects simulator protocol messages.
//
// Usage:
//
//	simwire <command> [flags] [args]
//
// Commands:
//
//	decode     Decode a message buffer given as hex or read from a file
//	encode     Encode a message from a YAML/JSON document
//	templates  List templates or show one
//	shell      Start an interactive shell
//
// Shared flags:
//
//	-config string         Configuration file (.toml or .yaml)
//	-templates string      Template catalogue file (default: embedded catalogue)
//	-log-level string      Log level: debug, info, warn, error (default "info")
//	-protocol-log string   File path for protocol event logging (CBOR format)
//
// Examples:
//
//	# Decode a buffer
//	simwire decode fffffffb0107000000
//
//	# Decode a captured file, tolerating trailing bytes
//	simwire decode -lenient -in capture.bin
//
//	# Encode a message
//	simwire encode -data ack.yaml
//
//	# Show a template
//	simwire templates TestMessage
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/simwire/simwire-go/cmd/simwire/commands"
	"github.com/simwire/simwire-go/cmd/simwire/interactive"
)

const usage = `simwire - Simulator Protocol Message Tool

Usage:
  simwire <command> [flags] [args]

Commands:
  decode     Decode a message buffer given as hex or read from a file
  encode     Encode a message from a YAML/JSON document
  templates  List templates or show one
  shell      Start an interactive shell

Use "simwire <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "decode":
		err = runDecode(args)
	case "encode":
		err = runEncode(args)
	case "templates":
		err = runTemplates(args)
	case "shell":
		err = runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet creates a subcommand flag set with the shared flags bound to cfg.
func newFlagSet(name, args, synopsis string, cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `simwire %s - %s

Usage:
  simwire %s [flags] %s

Flags:
`, name, synopsis, name, args)
		fs.PrintDefaults()
	}
	bindFlags(fs, cfg)
	return fs
}

func runDecode(args []string) error {
	cfg := DefaultConfig()
	fs := newFlagSet("decode", "<hex> | -in <file>", "Decode a message buffer", &cfg)
	in := fs.String("in", "", "Read the buffer from a file (raw or hex, - for stdin)")
	fs.BoolVar(&cfg.Lenient, "lenient", cfg.Lenient, "Ignore bytes after the last block")
	types := fs.Bool("types", false, "Show the wire type of each field")
	dump := fs.Bool("dump", false, "Print a hex dump before the decoded message")
	if err := parseConfig(fs, &cfg, args); err != nil {
		return err
	}

	var buf []byte
	var err error
	switch {
	case *in != "":
		buf, err = commands.ReadInput(*in, os.Stdin)
	case fs.NArg() > 0:
		buf, err = commands.ParseHex(strings.Join(fs.Args(), ""))
	default:
		fs.Usage()
		return fmt.Errorf("hex buffer or -in file required")
	}
	if err != nil {
		return err
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = commands.Decode(os.Stdout, a.codec, buf, commands.DecodeOptions{ShowTypes: *types, Dump: *dump})
	return err
}

func runEncode(args []string) error {
	cfg := DefaultConfig()
	fs := newFlagSet("encode", "-data <file>", "Encode a message from a YAML/JSON document", &cfg)
	data := fs.String("data", "", "Document with message and blocks (YAML or JSON, - for stdin)")
	if err := parseConfig(fs, &cfg, args); err != nil {
		return err
	}
	if *data == "" {
		fs.Usage()
		return fmt.Errorf("-data document required")
	}

	doc, err := commands.LoadDocument(*data, os.Stdin)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = commands.Encode(os.Stdout, a.codec, a.table, doc)
	return err
}

func runTemplates(args []string) error {
	cfg := DefaultConfig()
	fs := newFlagSet("templates", "[message]", "List templates or show one", &cfg)
	prefix := fs.String("prefix", "", "List only messages starting with prefix")
	if err := parseConfig(fs, &cfg, args); err != nil {
		return err
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if fs.NArg() > 0 {
		return commands.ShowTemplate(os.Stdout, a.table, fs.Arg(0))
	}
	commands.ListTemplates(os.Stdout, a.table, *prefix)
	return nil
}

func runShell(args []string) error {
	cfg := DefaultConfig()
	fs := newFlagSet("shell", "", "Start an interactive shell", &cfg)
	fs.BoolVar(&cfg.Lenient, "lenient", cfg.Lenient, "Ignore bytes after the last block")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address")
	if err := parseConfig(fs, &cfg, args); err != nil {
		return err
	}
	if cfg.Circuit == "" {
		cfg.Circuit = uuid.NewString()
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.MetricsAddr != "" {
		if err := a.serveMetrics(cfg.MetricsAddr); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	a.logger.Debug("shell started", "circuit", cfg.Circuit)
	return interactive.New(a.codec, a.table, os.Stdout).Run(ctx)
}
