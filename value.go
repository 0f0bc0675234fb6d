// File: prefix-parse/value.go
package prefixparse

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Value adapts a prefixed numeric literal to the flag.Value, flag.Getter,
// and encoding.TextUnmarshaler interfaces, so "0x"/"0o"/"0b" notation works
// directly in command-line flags and in TOML config fields (the TOML decoder
// invokes UnmarshalText for string values).
//
//	var mask prefixparse.Value[uint32]
//	fs.Var(&mask, "mask", "bit mask, any radix notation")
type Value[T constraints.Integer] struct {
	N T
}

// Set parses s with Parse and stores the result.
func (v *Value[T]) Set(s string) error {
	n, err := Parse[T](s)
	if err != nil {
		return err
	}
	v.N = n
	return nil
}

// String renders the held number in decimal. The original notation is not
// retained; a value set from "0x10" prints as "16".
func (v *Value[T]) String() string {
	if signed[T]() {
		return strconv.FormatInt(int64(v.N), 10)
	}
	return strconv.FormatUint(uint64(v.N), 10)
}

// Get implements flag.Getter, returning the held number as its native type.
func (v *Value[T]) Get() any {
	return v.N
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[T]) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// MarshalText renders the held number in decimal, matching String.
func (v *Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
