package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// Field is one key/value pair of a parsed request body. Values are kept
// as the platform parsed them, which may be any scalar or nested value
// for JSON bodies.
type Field struct {
	Key   string
	Value any
}

// Form is the platform's pre-parsed request body: an ordered sequence of
// fields. Order is the order the platform encountered the keys in, and
// is preserved through re-serialization.
type Form []Field

// Len returns the number of fields. A nil Form has length zero.
func (f Form) Len() int {
	return len(f)
}

// Get returns the first value stored under key and whether it was found.
func (f Form) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Add appends a field, keeping any fields already stored under key.
func (f Form) Add(key string, value any) Form {
	return append(f, Field{Key: key, Value: value})
}

// Encode re-serializes the form as a form-urlencoded string, preserving
// field order. Values are flattened with fmt.Sprint, so only bodies that
// were originally flat form data round-trip; nested JSON structures and
// binary payloads do not survive this encoding.
func (f Form) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(field.Value)))
	}
	return b.String()
}

// ParseQuery parses a form-urlencoded string into a Form, preserving the
// order keys appear in. Malformed escape sequences fail the parse.
func ParseQuery(query string) (Form, error) {
	var form Form
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("parse form key: %w", err)
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("parse form value: %w", err)
		}
		form = form.Add(key, value)
	}
	return form, nil
}
