// File: prefix-parse/decode.go
package prefixparse

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// DecodeHookFunc returns a mapstructure hook that converts string values
// carrying a radix prefix into integer-typed struct fields, honoring the
// target field's exact bit width and signedness. Strings without a prefix
// are passed through untouched so that plain decimals remain the business of
// whatever hook or weak-typing rule comes next in the chain.
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		str := data.(string)
		rest, radix, ok := cutKnownPrefix(str)
		if !ok {
			return data, nil
		}

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(rest, radix, t.Bits())
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", str, err)
			}
			return reflect.ValueOf(i).Convert(t).Interface(), nil

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			u, err := strconv.ParseUint(rest, radix, t.Bits())
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", str, err)
			}
			return reflect.ValueOf(u).Convert(t).Interface(), nil
		}

		return data, nil
	}
}

// Decode decodes a string-keyed map (as produced by a TOML, env, or CLI
// layer) into the target struct pointer, converting prefixed numeric
// literals along the way. Field matching uses "toml" tags.
func Decode(input any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			DecodeHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}
