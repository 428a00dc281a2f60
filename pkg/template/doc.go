// Package template holds the static message catalogue the codec is driven by.
//
// A Message template names a message, fixes its header identity
// (Frequency and Number), its trust level and zero-coding eligibility, and
// lists its blocks in wire order. Each Block has a repetition Shape and an
// ordered list of typed Fields.
//
// Templates are grouped in a Table, which is validated and indexed once and
// never mutated afterwards:
//
//	tbl, err := template.Default()          // embedded catalogue
//	tbl, err := template.Load("messages.msg") // native text format
//	tbl, err := template.LoadYAML("messages.yaml")
//
// The codec only depends on the Lookup interface, so callers can supply
// their own catalogue implementation.
package template
