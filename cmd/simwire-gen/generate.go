package main

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode"
)

const namesTmpl = `// Code generated by simwire-gen. DO NOT EDIT.

package {{.Package}}

// Message names in the catalogue.
const (
{{- range .Names}}
	{{constName .}} = {{quote .}}
{{- end}}
)

// MessageNames lists every message name in the catalogue, sorted.
var MessageNames = []string{
{{- range .Names}}
	{{constName .}},
{{- end}}
}
`

var namesTemplate = template.Must(template.New("names").Funcs(template.FuncMap{
	"constName": constName,
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(namesTmpl))

type namesData struct {
	Package string
	Names   []string
}

// GenerateNames renders the names file for pkg. The result is valid but
// unformatted Go source.
func GenerateNames(pkg string, names []string) (string, error) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	seen := make(map[string]string, len(sorted))
	for _, n := range sorted {
		c := constName(n)
		if prev, dup := seen[c]; dup {
			return "", fmt.Errorf("messages %q and %q map to the same identifier %s", prev, n, c)
		}
		seen[c] = n
	}

	var b strings.Builder
	if err := namesTemplate.Execute(&b, namesData{Package: pkg, Names: sorted}); err != nil {
		return "", fmt.Errorf("template names: %w", err)
	}
	return b.String(), nil
}

// constName converts a message name into its exported constant name, e.g.
// "PacketAck" to "MsgPacketAck". Characters that cannot appear in a Go
// identifier are dropped.
func constName(name string) string {
	var b strings.Builder
	b.WriteString("Msg")
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		default:
			upper = true
		}
	}
	return b.String()
}
