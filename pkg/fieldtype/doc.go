// Package fieldtype defines the primitive wire types used by message templates.
//
// Every field in a template block has exactly one Type. A Type knows its wire
// width, how to append a Go value to a buffer, how to decode one back, and how
// to render a decoded value as display text.
//
// # Wire Widths
//
// Most types have a fixed width. Fixed spans take their width from the
// template. Variable1 and Variable2 are self-describing: a 1-byte or 2-byte
// little-endian length prefix followed by that many raw bytes.
//
// # Byte Order
//
// Integers, floats and vectors are little-endian. IPAddr and IPPort are
// big-endian (network order).
//
// # Text
//
// Text travels in variable spans as raw bytes followed by one zero byte.
// Supplying a Go string to a variable span appends the terminator; supplying
// a []byte writes the bytes unchanged.
package fieldtype
