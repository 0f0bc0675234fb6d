// File: prefix-parse/format.go
package prefixparse

import "fmt"

// Format pairs a literal prefix string with the radix its digits are read in.
// The zero value is a valid format: empty prefix, radix 0, which strconv
// treats as base auto-detection. Callers may construct any combination; the
// package does not guard against ambiguous or overlapping custom prefixes,
// and a radix outside strconv's 2..36 range is reported by the underlying
// digit parser at parse time.
type Format struct {
	Prefix string
	Radix  int
}

// Built-in formats recognized by Parse, in its dispatch priority order.
var (
	// Hex is the "0x" prefix for hexadecimal numbers.
	Hex = Format{Prefix: "0x", Radix: 16}

	// Oct is the "0o" prefix for octal numbers.
	Oct = Format{Prefix: "0o", Radix: 8}

	// Bin is the "0b" prefix for binary numbers.
	Bin = Format{Prefix: "0b", Radix: 2}

	// Dec is the empty prefix for plain decimal numbers.
	Dec = Format{Prefix: "", Radix: 10}
)

// String returns a short description like `"0x" (base 16)`.
func (f Format) String() string {
	return fmt.Sprintf("%q (base %d)", f.Prefix, f.Radix)
}
