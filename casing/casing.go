// Package casing converts the key casing of decoded JSON values.
//
// Swell API payloads use snake_case keys on the wire. Clients configured for
// camelCase mode pass decoded responses through ToCamel before returning them
// to the caller.
package casing

import "strings"

// CamelKey converts a snake_case key to camelCase.
//
// Only an underscore immediately followed by an ASCII letter or digit is
// consumed; the following character is upper-cased. Any other underscore
// (doubled, trailing, or followed by a non-alphanumeric byte) is preserved
// verbatim:
//
//	snake_case   -> snakeCase
//	snake_case_2 -> snakeCase2
//	snake__case  -> snake_Case
//	snake_case_  -> snakeCase_
func CamelKey(key string) string {
	if !strings.ContainsRune(key, '_') {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))

	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && isAlnum(key[i+1]) {
			b.WriteByte(upper(key[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ToCamel returns a deep copy of a JSON-compatible value (map[string]any,
// []any, scalar, or nil) with every object key rewritten via CamelKey.
// Arrays are mapped element-wise; scalars and nil pass through unchanged.
// The input is never mutated.
func ToCamel(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[CamelKey(k)] = ToCamel(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToCamel(elem)
		}
		return out
	default:
		return v
	}
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
