// File: prefix-parse/convenience.go
package prefixparse

import (
	"flag"
	"fmt"

	"golang.org/x/exp/constraints"
)

// MustParse is like Parse but panics on error. Intended for literals known
// valid at compile time, such as package-level constants.
func MustParse[T constraints.Integer](src string) T {
	n, err := Parse[T](src)
	if err != nil {
		panic(fmt.Sprintf("prefixparse: parse %q failed: %v", src, err))
	}
	return n
}

// MustParseWith is like ParseWith but panics on error.
func MustParseWith[T constraints.Integer](format Format, src string) T {
	n, err := ParseWith[T](format, src)
	if err != nil {
		panic(fmt.Sprintf("prefixparse: parse %q with %v failed: %v", src, format, err))
	}
	return n
}

// Flag defines a flag on fs that accepts any radix notation and returns a
// pointer to the parsed number, in the shape of the FlagSet.Int family.
func Flag[T constraints.Integer](fs *flag.FlagSet, name string, value T, usage string) *T {
	v := &Value[T]{N: value}
	fs.Var(v, name, usage)
	return &v.N
}
