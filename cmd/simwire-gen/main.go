// Command simwire-gen generates Go constants for the message names of a
// template catalogue.
//
// Usage:
//
//	simwire-gen -catalogue <file> -output <names_gen.go> [-package template]
//
// The catalogue may be YAML (.yaml, .yml) or the native text format.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	msgtemplate "github.com/simwire/simwire-go/pkg/template"
)

func main() {
	cataloguePath := flag.String("catalogue", "", "Path to the template catalogue")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "template", "Package name of the generated file")
	flag.Parse()

	if *cataloguePath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: simwire-gen -catalogue <file> -output <file> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*cataloguePath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cataloguePath, output, pkg string) error {
	tbl, err := msgtemplate.Load(cataloguePath)
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	code, err := GenerateNames(pkg, tbl.Names())
	if err != nil {
		return fmt.Errorf("generating names: %w", err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
