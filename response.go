package fnbridge

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-fnbridge/fnbridge/header"
	"github.com/go-fnbridge/fnbridge/validation"
)

// Response is the fetch-style response produced by the wrapped
// application. The body is either fully buffered in Body, readable from
// BodyStream, or absent when both are nil.
type Response struct {
	StatusCode int
	StatusText string
	Header     header.Header
	Body       []byte
	BodyStream io.Reader
}

// NewResponse returns an empty response with the given status and the
// standard status text for it.
func NewResponse(status int) *Response {
	return &Response{
		StatusCode: status,
		StatusText: http.StatusText(status),
		Header:     header.New(),
	}
}

// TextResponse returns a buffered text/plain response.
func TextResponse(status int, body string) *Response {
	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp.Body = []byte(body)
	return resp
}

type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorBody defines the structure inside the top-level `error` key.
type ErrorBody struct {
	Type    string        `json:"type"`
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Fields  []ErrorDetail `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Status string    `json:"status"`
	Code   int       `json:"code"`
	Error  ErrorBody `json:"error"`
}

type SuccessEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// JSONResponse returns a buffered application/json response wrapping data
// in the success envelope.
func JSONResponse(status int, data any) *Response {
	return jsonResponse(status, SuccessEnvelope{Status: "success", Data: data})
}

// ErrorResponse builds a consistent error envelope response. When details
// are provided they are included under `error.fields`.
func ErrorResponse(status int, _type, code, message string, details any) *Response {
	eb := ErrorBody{Type: _type, Code: code, Message: message}
	if d := convertDetails(details); len(d) > 0 {
		eb.Fields = d
	}
	return jsonResponse(status, ErrorEnvelope{Status: "error", Code: status, Error: eb})
}

func jsonResponse(status int, v any) *Response {
	resp := NewResponse(status)
	body, err := json.Marshal(v)
	if err != nil {
		resp.StatusCode = http.StatusInternalServerError
		resp.StatusText = http.StatusText(http.StatusInternalServerError)
		body = []byte(`{"status":"error","code":500,"error":{"type":"internal","code":"ENCODE_FAILED","message":"response encoding failed"}}`)
	}
	resp.Header.Set("Content-Type", "application/json")
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	resp.Body = body
	return resp
}

// convertDetails attempts to turn various detail types into []ErrorDetail.
func convertDetails(details any) []ErrorDetail {
	switch d := details.(type) {
	case nil:
		return nil
	case []ErrorDetail:
		return d
	case []validation.FieldError:
		out := make([]ErrorDetail, 0, len(d))
		for _, fe := range d {
			out = append(out, ErrorDetail{Field: fe.Field, Code: fe.Code, Message: fe.Message})
		}
		return out
	default:
		return nil
	}
}
