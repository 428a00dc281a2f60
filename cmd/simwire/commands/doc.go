// Package commands implements the operations behind the simwire
// subcommands and shell, writing their human-readable output to an
// io.Writer.
package commands
