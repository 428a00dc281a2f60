// Command simwire-log views and analyzes protocol log files written by the
// codec's protocol logger (simwire -protocol-log).
//
// Usage:
//
//	simwire-log <command> [flags] <file.slog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View only parsed messages
//	simwire-log view -direction in capture.slog
//
//	# View decode failures on one circuit
//	simwire-log view -category error -circuit 3f2a9c1e capture.slog
//
//	# Keep only AgentUpdate traffic
//	simwire-log filter -message AgentUpdate -o agent.slog capture.slog
//
//	# Show statistics
//	simwire-log stats capture.slog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/simwire/simwire-go/cmd/simwire-log/commands"
	"github.com/simwire/simwire-go/pkg/log"
)

const usage = `simwire-log - Simulator Protocol Log Analyzer

Usage:
  simwire-log <command> [flags] <file.slog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "simwire-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags bound to opts.
func newFlagSet(name, synopsis string, opts *commands.FilterOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `simwire-log %s - %s

Usage:
  simwire-log %s [flags] <file.slog>

Flags:
`, name, synopsis, name)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.Circuit, "circuit", "", "Filter by circuit ID")
	fs.StringVar(&opts.Message, "message", "", "Filter by message template name")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, warning, error)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs
}

// parseArgs parses args and returns the log path and the resulting filter.
func parseArgs(fs *flag.FlagSet, opts *commands.FilterOptions, args []string) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := opts.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return fs.Arg(0), filter
}

func runView(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("view", "View log file in human-readable format", &opts)
	path, filter := parseArgs(fs, &opts, args)

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("export", "Export log file to JSON or CSV format", &opts)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path, filter := parseArgs(fs, &opts, args)

	if err := commands.RunExport(path, filter, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("filter", "Filter log file and write to new file", &opts)
	output := fs.String("o", "", "Output file (required)")
	path, filter := parseArgs(fs, &opts, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	count, err := commands.RunFilter(path, filter, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Filtered %d events to %s\n", count, *output)
}

func runStats(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("stats", "Show statistics about the log file", &opts)
	path, filter := parseArgs(fs, &opts, args)

	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
