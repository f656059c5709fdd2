package models

import "sort"

// Variables is the flat result of a resolution: environment variable name to
// its final value. Keys are case-sensitive and values are never coerced.
type Variables map[string]string

// Keys returns the variable names in lexical order so that anything printed
// from a Variables value is deterministic.
func (v Variables) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy of v. A nil receiver yields an empty,
// non-nil mapping.
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}

	return out
}
