package swell

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// QueryParam is a single key/value pair in a request query string.
type QueryParam struct {
	Key   string
	Value any
}

// Query is an ordered list of query parameters. Order matters: parameters
// serialize in insertion order, matching the behavior storefronts depend on
// when they read URLs back. Nested maps serialize with bracketed subkeys
// (key[subkey]=value, subkeys sorted) and slices with bracketed indices
// (key[0]=value).
type Query []QueryParam

// Add appends a parameter and returns the extended query.
func (q Query) Add(key string, value any) Query {
	return append(q, QueryParam{Key: key, Value: value})
}

// Encode serializes the query. Keys are emitted literally (brackets and
// filter sigils intact); only values are URL-escaped. Nil values are skipped.
func (q Query) Encode() string {
	var b strings.Builder
	for _, p := range q {
		encodeValue(&b, p.Key, p.Value)
	}
	return b.String()
}

func encodeValue(b *strings.Builder, key string, value any) {
	if value == nil {
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		encodeValue(b, key, rv.Elem().Interface())
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		elems := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			elems[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			encodeValue(b, key+"["+k+"]", elems[k])
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			encodeValue(b, fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
		}
	default:
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(value)))
	}
}
