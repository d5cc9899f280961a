package fnbridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fnbridge/fnbridge/validation"
)

func TestTextResponse(t *testing.T) {
	resp := TextResponse(200, "ok")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", resp.StatusText)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("content-type"))
	assert.Equal(t, "ok", string(resp.Body))
}

func TestJSONResponse(t *testing.T) {
	resp := JSONResponse(201, map[string]string{"id": "7"})

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("content-type"))

	var env SuccessEnvelope
	require.NoError(t, json.Unmarshal(resp.Body, &env))
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, map[string]any{"id": "7"}, env.Data)
}

func TestErrorResponse(t *testing.T) {
	fields := []validation.FieldError{{Field: "name", Code: "INVALID_REQUIRED", Message: "name is required"}}
	resp := ErrorResponse(422, "validation", "INVALID_ENTRY", "entry is invalid", fields)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body, &env))

	assert.Equal(t, "error", env.Status)
	assert.Equal(t, 422, env.Code)
	assert.Equal(t, "validation", env.Error.Type)
	assert.Equal(t, "INVALID_ENTRY", env.Error.Code)
	require.Len(t, env.Error.Fields, 1)
	assert.Equal(t, "name", env.Error.Fields[0].Field)
}

func TestErrorResponseNoDetails(t *testing.T) {
	resp := ErrorResponse(500, "internal", "UNHANDLED", "boom", nil)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body, &env))
	assert.Empty(t, env.Error.Fields)
}
