// File: prefix-parse/value_test.go
package prefixparse_test

import (
	"flag"
	"io"
	"testing"

	"github.com/BurntSushi/toml"
	prefixparse "github.com/MaxMahem/prefix-parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueAsFlag tests Value under flag.FlagSet parsing
func TestValueAsFlag(t *testing.T) {
	t.Run("AllNotations", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		var mask prefixparse.Value[uint32]
		fs.Var(&mask, "mask", "bit mask")

		err := fs.Parse([]string{"-mask=0xff"})
		require.NoError(t, err)
		assert.Equal(t, uint32(255), mask.N)
		assert.Equal(t, uint32(255), mask.Get())

		err = fs.Parse([]string{"-mask=0b101"})
		require.NoError(t, err)
		assert.Equal(t, uint32(5), mask.N)
	})

	t.Run("InvalidFlagValue", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var mask prefixparse.Value[uint8]
		fs.Var(&mask, "mask", "bit mask")

		err := fs.Parse([]string{"-mask=0x100"})
		assert.Error(t, err) // overflow for uint8 surfaces through flag
	})

	t.Run("FlagHelper", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		port := prefixparse.Flag[uint16](fs, "port", 8080, "listen port")

		require.NoError(t, fs.Parse(nil))
		assert.Equal(t, uint16(8080), *port) // default survives

		require.NoError(t, fs.Parse([]string{"-port=0x1f90"}))
		assert.Equal(t, uint16(8080), *port) // 0x1f90 == 8080

		require.NoError(t, fs.Parse([]string{"-port=0o17"}))
		assert.Equal(t, uint16(15), *port)
	})
}

// TestValueInTOML tests Value fields inside a TOML document
func TestValueInTOML(t *testing.T) {
	type Config struct {
		BaseAddr prefixparse.Value[uint32] `toml:"base_addr"`
		Mode     prefixparse.Value[int]    `toml:"mode"`
	}

	var cfg Config
	err := toml.Unmarshal([]byte(`
base_addr = "0xdead"
mode = "0b11"
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, uint32(0xdead), cfg.BaseAddr.N)
	assert.Equal(t, 3, cfg.Mode.N)
}

// TestValueTOMLBadLiteral tests that digit-parse failures surface from the TOML layer
func TestValueTOMLBadLiteral(t *testing.T) {
	type Config struct {
		Mask prefixparse.Value[uint8] `toml:"mask"`
	}

	var cfg Config
	err := toml.Unmarshal([]byte(`mask = "0xzz"`), &cfg)
	assert.Error(t, err)
}

// TestValueText tests the text round-trip
func TestValueText(t *testing.T) {
	var v prefixparse.Value[int32]
	require.NoError(t, v.UnmarshalText([]byte("0x10")))
	assert.Equal(t, int32(16), v.N)

	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "16", string(text)) // decimal out, original notation not kept

	assert.Equal(t, "16", v.String())
}

// TestValueSetError tests that Set reports typed parse errors
func TestValueSetError(t *testing.T) {
	var v prefixparse.Value[uint16]
	err := v.Set("0x")
	require.Error(t, err)

	var parseErr *prefixparse.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, prefixparse.RadixParseFailed, parseErr.Kind)
	assert.Equal(t, uint16(0), v.N) // failed Set leaves the value untouched
}
