package template

import (
	"embed"
	"fmt"
	"sync"
)

//go:generate go run ../../cmd/simwire-gen -catalogue catalogue/messages.yaml -output names_gen.go

//go:embed catalogue/*.yaml
var catalogueFS embed.FS

// DefaultCatalogue is the embedded catalogue file read by Default.
const DefaultCatalogue = "catalogue/messages.yaml"

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded template table. It is parsed on first use
// and shared read-only afterwards.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		data, err := catalogueFS.ReadFile(DefaultCatalogue)
		if err != nil {
			defaultErr = fmt.Errorf("embedded catalogue: %w", err)
			return
		}
		defaultTable, defaultErr = ParseYAML(data)
	})
	return defaultTable, defaultErr
}

// MustDefault is like Default but panics if the embedded catalogue is broken.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}
