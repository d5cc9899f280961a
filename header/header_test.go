package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBasics(t *testing.T) {
	h := New()

	h.Set("Content-Type", "text/html")
	assert.Equal(t, "text/html", h.Get("content-type"))

	h.Add("X-Test", "v1")
	h.Add("x-test", "v2")
	assert.Equal(t, []string{"v1", "v2"}, h.Values("X-Test"))
	assert.Equal(t, "v1", h.Get("x-test"))

	h.Set("x-test", "v3")
	assert.Equal(t, []string{"v3"}, h.Values("x-test"))

	h.Del("X-Test")
	assert.Empty(t, h.Values("x-test"))
	assert.Equal(t, "", h.Get("x-test"))
}

func TestKeysSorted(t *testing.T) {
	h := New()
	h.Set("zulu", "1")
	h.Set("alpha", "2")
	h.Set("Mike", "3")

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, h.Keys())
}

func TestClone(t *testing.T) {
	h := New()
	h.Add("set-cookie", "a=1")

	clone := h.Clone()
	clone.Add("set-cookie", "b=2")

	assert.Equal(t, []string{"a=1"}, h.Values("set-cookie"))
	assert.Equal(t, []string{"a=1", "b=2"}, clone.Values("set-cookie"))
}

func TestFromMapMultiValue(t *testing.T) {
	h := FromMap(map[string][]string{
		"set-cookie": {"a=1", "b=2"},
	})

	require.Equal(t, []string{"a=1", "b=2"}, h.Values("set-cookie"))
}

func TestFromMapSingleValue(t *testing.T) {
	h := FromMap(map[string][]string{
		"Host":       {"example.com"},
		"User-Agent": {"test"},
	})

	assert.Equal(t, "example.com", h.Get("host"))
	assert.Equal(t, []string{"test"}, h.Values("user-agent"))
}

func TestFromMapSkipsEmptyEntries(t *testing.T) {
	h := FromMap(map[string][]string{
		"x-none":  nil,
		"x-zero":  {},
		"x-blank": {""},
		"x-real":  {"yes"},
	})

	assert.Len(t, h, 1)
	assert.Equal(t, "yes", h.Get("x-real"))
}
