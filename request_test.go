package fnbridge

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fnbridge/fnbridge/bridgetest"
	"github.com/go-fnbridge/fnbridge/platform"
)

func TestNewRequestURL(t *testing.T) {
	pr := bridgetest.NewRequest("GET", "https://example.com/foo?x=1")

	req, err := NewRequest(pr)
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://example.com/foo?x=1", req.URL.String())
	assert.Nil(t, req.Body)
}

func TestNewRequestNoHost(t *testing.T) {
	pr := bridgetest.NewRequest("GET", "https://example.com/")
	pr.HostValue = ""

	_, err := NewRequest(pr)
	require.ErrorIs(t, err, ErrNoHost)
}

func TestNewRequestHeaders(t *testing.T) {
	pr := bridgetest.NewRequest("GET", "http://example.com/")
	pr.HeaderMap = map[string][]string{
		"set-cookie": {"a=1", "b=2"},
		"user-agent": {"test"},
		"x-empty":    {""},
	}

	req, err := NewRequest(pr)
	require.NoError(t, err)

	assert.Equal(t, []string{"a=1", "b=2"}, req.Header.Values("set-cookie"))
	assert.Equal(t, "test", req.Header.Get("user-agent"))
	assert.Empty(t, req.Header.Values("x-empty"))
}

func TestNewRequestBody(t *testing.T) {
	pr := bridgetest.NewRequest("POST", "https://example.com/submit")
	pr.Form = platform.Form{}.Add("a", "1").Add("b", "2")

	req, err := NewRequest(pr)
	require.NoError(t, err)
	require.NotNil(t, req.Body)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", string(body))
}

func TestNewRequestEmptyBody(t *testing.T) {
	for _, form := range []platform.Form{nil, {}} {
		pr := bridgetest.NewRequest("POST", "https://example.com/submit")
		pr.Form = form

		req, err := NewRequest(pr)
		require.NoError(t, err)
		assert.Nil(t, req.Body)
	}
}

func TestNewRequestDeterministic(t *testing.T) {
	build := func() (*Request, []byte) {
		pr := bridgetest.NewRequest("POST", "https://example.com/submit?x=1")
		pr.HeaderMap = map[string][]string{"x-test": {"v1", "v2"}}
		pr.Form = platform.Form{}.Add("a", "1")
		req, err := NewRequest(pr)
		require.NoError(t, err)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		return req, body
	}

	first, firstBody := build()
	second, secondBody := build()

	assert.Equal(t, first.Method, second.Method)
	assert.Equal(t, first.URL.String(), second.URL.String())
	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, firstBody, secondBody)
}

func TestNewRequestDefaultScheme(t *testing.T) {
	pr := bridgetest.NewRequest("GET", "https://example.com/foo")
	pr.Scheme = ""

	req, err := NewRequest(pr)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/foo", req.URL.String())
}
