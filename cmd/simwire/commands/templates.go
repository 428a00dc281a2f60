package commands

import (
	"fmt"
	"io"

	"github.com/simwire/simwire-go/pkg/inspect"
	"github.com/simwire/simwire-go/pkg/template"
)

// ListTemplates writes one line per template whose name starts with prefix
// (case-insensitive; empty lists all).
func ListTemplates(w io.Writer, tbl *template.Table, prefix string) int {
	names := inspect.CompleteMessageName(tbl, prefix)
	for _, name := range names {
		m, _ := tbl.ByName(name)
		fmt.Fprintf(w, "%-28s %-6s %5d  %d blocks\n", m.Name, m.Frequency, m.Number, len(m.Blocks))
	}
	return len(names)
}

// ShowTemplate writes the layout of one template.
func ShowTemplate(w io.Writer, tbl *template.Table, name string) error {
	resolved, ok := inspect.ResolveMessageName(tbl, name)
	if !ok {
		return fmt.Errorf("unknown message %q", name)
	}
	m, _ := tbl.ByName(resolved)
	fmt.Fprint(w, inspect.NewFormatter().FormatTemplate(m))
	return nil
}
