package inspect

import (
	"strings"

	"github.com/simwire/simwire-go/pkg/template"
)

// resolveName returns the entry of names equal to name ignoring case.
// An exact match wins over a case-insensitive one.
func resolveName(names []string, name string) (string, bool) {
	found := ""
	for _, n := range names {
		if n == name {
			return n, true
		}
		if found == "" && strings.EqualFold(n, name) {
			found = n
		}
	}
	return found, found != ""
}

// ResolveMessageName resolves a message name in the table (case-insensitive).
func ResolveMessageName(tbl *template.Table, name string) (string, bool) {
	return resolveName(tbl.Names(), name)
}

// ResolveBlockName resolves a block name of a template (case-insensitive).
func ResolveBlockName(m *template.Message, name string) (string, bool) {
	names := make([]string, len(m.Blocks))
	for i, b := range m.Blocks {
		names[i] = b.Name
	}
	return resolveName(names, name)
}

// ResolveFieldName resolves a field name of a block (case-insensitive).
func ResolveFieldName(b *template.Block, name string) (string, bool) {
	names := make([]string, len(b.Fields))
	for i, f := range b.Fields {
		names[i] = f.Name
	}
	return resolveName(names, name)
}

// CompleteMessageName returns the table's message names starting with prefix
// (case-insensitive), in sorted order.
func CompleteMessageName(tbl *template.Table, prefix string) []string {
	var out []string
	lp := strings.ToLower(prefix)
	for _, n := range tbl.Names() {
		if strings.HasPrefix(strings.ToLower(n), lp) {
			out = append(out, n)
		}
	}
	return out
}
