// File: prefix-parse/doc.go

// Package prefixparse parses textual numeric literals that may carry a radix
// prefix — hexadecimal ("0x"), octal ("0o"), binary ("0b"), or none (decimal) —
// into any Go integer type. It is a small utility intended for CLI argument
// parsers and config readers that accept numbers in multiple conventional
// notations.
//
// Features:
//   - Generic over every integer type via constraints.Integer
//   - Fixed four-way prefix dispatch with decimal fallback (Parse)
//   - Explicit custom formats, including multi-byte prefixes (ParseWith)
//   - Typed errors distinguishing prefix mismatch from digit-parse failure,
//     with the underlying strconv error preserved for errors.Is inspection
//   - mapstructure decode hook for config structs (DecodeHookFunc, Decode)
//   - flag.Value / encoding.TextUnmarshaler adapter for flags and TOML (Value)
//
// Quick Start:
//
//	n, err := prefixparse.Parse[uint32]("0x10") // 16
//	n, err = prefixparse.Parse[uint32]("0o10")  // 8
//	n, err = prefixparse.Parse[uint32]("0b10")  // 2
//	n, err = prefixparse.Parse[uint32]("10")    // 10
//
// Custom formats:
//
//	base36 := prefixparse.Format{Prefix: "0z", Radix: 36}
//	n, err := prefixparse.ParseWith[uint32](base36, "0z1jz") // 2015
//
// Thread Safety:
// Every function is a pure computation over its arguments. The package holds
// no state, so concurrent use needs no coordination.
package prefixparse
