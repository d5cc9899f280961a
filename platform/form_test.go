package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormLen(t *testing.T) {
	var form Form
	assert.Equal(t, 0, form.Len())

	form = form.Add("a", "1")
	assert.Equal(t, 1, form.Len())
}

func TestFormGet(t *testing.T) {
	form := Form{}.Add("a", "1").Add("a", "2").Add("b", "3")

	v, ok := form.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = form.Get("missing")
	assert.False(t, ok)
}

func TestFormEncodePreservesOrder(t *testing.T) {
	form := Form{}.Add("a", "1").Add("b", "2")
	assert.Equal(t, "a=1&b=2", form.Encode())
}

func TestFormEncodeEscapes(t *testing.T) {
	form := Form{}.Add("q", "a b&c").Add("x y", "1")
	assert.Equal(t, "q=a+b%26c&x+y=1", form.Encode())
}

func TestFormEncodeFlattensValues(t *testing.T) {
	// Nested structures do not round-trip; they are flattened with
	// fmt.Sprint the way the original form re-serialization behaves.
	form := Form{}.Add("n", 42)
	assert.Equal(t, "n=42", form.Encode())
}

func TestParseQuery(t *testing.T) {
	form, err := ParseQuery("a=1&b=2&a=3")
	require.NoError(t, err)
	require.Equal(t, 3, form.Len())
	assert.Equal(t, Form{{"a", "1"}, {"b", "2"}, {"a", "3"}}, form)
	assert.Equal(t, "a=1&b=2&a=3", form.Encode())
}

func TestParseQueryEmpty(t *testing.T) {
	form, err := ParseQuery("")
	require.NoError(t, err)
	assert.Equal(t, 0, form.Len())
}

func TestParseQueryMalformed(t *testing.T) {
	_, err := ParseQuery("a=%zz")
	assert.Error(t, err)
}
