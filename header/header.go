package header

import (
	"sort"
	"strings"
)

// Header represents the multi-valued header collection handed to the
// wrapped application. Unlike net/http, keys are kept in their lowercase
// form, matching the fetch-style headers contract.
type Header map[string][]string

// New returns an initialized and empty header collection.
func New() Header {
	return Header{}
}

// Add appends value under key, keeping any values already present.
func (h Header) Add(key, value string) {
	key = canonical(key)
	h[key] = append(h[key], value)
}

// Set replaces all values under key with the single element value.
func (h Header) Set(key, value string) {
	h[canonical(key)] = []string{value}
}

// Get returns the first value under key, or "" when the key is absent.
func (h Header) Get(key string) string {
	if values := h[canonical(key)]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Del removes all values under key.
func (h Header) Del(key string) {
	delete(h, canonical(key))
}

// Values returns all values under key, in insertion order. The returned
// slice is not a copy.
func (h Header) Values(key string) []string {
	return h[canonical(key)]
}

// Keys returns all keys sorted lexicographically so iteration during
// response emission is deterministic.
func (h Header) Keys() []string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the collection.
func (h Header) Clone() Header {
	clone := make(Header, len(h))
	for key, values := range h {
		clone[key] = append([]string(nil), values...)
	}
	return clone
}

// FromMap translates a platform header mapping into a Header. A key with
// no values, or a single empty value, contributes nothing. A key with a
// single value becomes one Set; a key with several values becomes one Add
// per value, preserving their order so repeated headers such as
// Set-Cookie survive the translation. Values are passed through without
// any validity checking.
func FromMap(m map[string][]string) Header {
	h := New()
	for key, values := range m {
		switch {
		case len(values) == 0:
			continue
		case len(values) == 1:
			if values[0] == "" {
				continue
			}
			h.Set(key, values[0])
		default:
			for _, value := range values {
				h.Add(key, value)
			}
		}
	}
	return h
}

func canonical(key string) string {
	return strings.ToLower(key)
}
