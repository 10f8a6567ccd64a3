// Package types contains common types used across the header packages.
package types

import "github.com/ghettovoice/gohttphdr/internal/util"

// Values maps a parameter name to its values in order of appearance.
// The keys in the map are case-insensitive.
// It is typically used to store parameters of header values.
type Values map[string][]string

// First returns the first value associated with the key.
func (vals Values) First(key string) (string, bool) {
	v := vals[util.LCase(key)]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value associated with the key.
// Repeated parameters resolve last-wins.
func (vals Values) Last(key string) (string, bool) {
	v := vals[util.LCase(key)]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Append adds the value to the key's list.
func (vals Values) Append(key, value string) Values {
	key = util.LCase(key)
	vals[key] = append(vals[key], value)
	return vals
}

// Has checks whether a given key is in the list.
func (vals Values) Has(key string) bool {
	_, ok := vals[util.LCase(key)]
	return ok
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = make([]string, len(vs))
		copy(vals2[k], vs)
	}
	return vals2
}
