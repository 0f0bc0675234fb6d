// File: prefix-parse/parse.go
package prefixparse

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Parse parses a number prefixed with "0x" (hexadecimal), "0o" (octal), or
// "0b" (binary). Input with none of the three prefixes is parsed as decimal.
// Dispatch priority is hex, then octal, then binary, then the decimal
// fallback. A recognized prefix commits to its radix: "0xzz" fails rather
// than falling back to decimal.
//
//	prefixparse.Parse[uint32]("0x10") // 16
//	prefixparse.Parse[uint32]("0o10") // 8
//	prefixparse.Parse[uint32]("0b10") // 2
//	prefixparse.Parse[uint32]("10")   // 10
//
// All failures are returned as *ParseError with kind RadixParseFailed; Parse
// never panics on malformed input.
func Parse[T constraints.Integer](src string) (T, error) {
	rest, radix, _ := cutKnownPrefix(src)
	return parseDigits[T](rest, radix)
}

// cutKnownPrefix splits a built-in radix prefix off src, checking hex, then
// octal, then binary. ok is false when src carries none of the three, in
// which case rest is src unchanged and radix is 10. Detection compares raw
// bytes; slicing at offset 2 cannot split a multi-byte character because
// both prefix bytes are ASCII. Custom prefixes are not given this treatment,
// see ParseWith.
func cutKnownPrefix(src string) (rest string, radix int, ok bool) {
	if len(src) >= 2 && src[0] == '0' {
		switch src[1] {
		case 'x':
			return src[2:], 16, true
		case 'o':
			return src[2:], 8, true
		case 'b':
			return src[2:], 2, true
		}
	}
	return src, 10, false
}

// ParseWith parses a number against a single explicit format. The input must
// begin with exactly format.Prefix (textual match, safe for multi-byte
// prefixes); a missing prefix is itself an error, never a signal to try
// decimal.
//
//	prefixparse.ParseWith[uint32](prefixparse.Hex, "0x10") // 16
//
//	base36 := prefixparse.Format{Prefix: "0z", Radix: 36}
//	prefixparse.ParseWith[uint32](base36, "0z1jz") // 2015
func ParseWith[T constraints.Integer](format Format, src string) (T, error) {
	rest, ok := strings.CutPrefix(src, format.Prefix)
	if !ok {
		return 0, &ParseError{Kind: NoPrefixMatch}
	}
	return parseDigits[T](rest, format.Radix)
}

// parseDigits wraps the raw digit parser's failure as a ParseError.
func parseDigits[T constraints.Integer](digits string, radix int) (T, error) {
	n, err := parseInteger[T](digits, radix)
	if err != nil {
		return 0, &ParseError{Kind: RadixParseFailed, Err: err}
	}
	return n, nil
}

// parseInteger parses digits in the given radix into any integer type,
// selecting ParseInt or ParseUint by T's signedness and honoring T's exact
// bit width so overflow is reported for the caller's type, not for int64.
func parseInteger[T constraints.Integer](digits string, radix int) (T, error) {
	var out T
	bits := reflect.TypeOf(out).Bits()
	if signed[T]() {
		i, err := strconv.ParseInt(digits, radix, bits)
		if err != nil {
			return 0, err
		}
		return T(i), nil
	}
	u, err := strconv.ParseUint(digits, radix, bits)
	if err != nil {
		return 0, err
	}
	return T(u), nil
}

// signed reports whether T is a signed integer type.
func signed[T constraints.Integer]() bool {
	var x T
	return ^x < 0 // ^0 is -1 for signed types, the maximum for unsigned
}
