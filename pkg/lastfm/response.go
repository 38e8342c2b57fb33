package lastfm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// errorEnvelope is the body Last.fm returns for failed calls:
//
//	{"error": 6, "message": "Invalid parameters"}
type errorEnvelope struct {
	Code    flexInt `json:"error"`
	Message string  `json:"message"`
}

// flexInt accepts both 6 and "6". Empty strings and null decode as 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("invalid integer %q", b)
	}
	*f = flexInt(n)
	return nil
}

// isObject reports whether raw holds a JSON object.
func isObject(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// normalize turns a response body into the caller-meaningful payload.
//
// An object with an "error" key becomes an *APIError. Otherwise the body is
// passed through Unwrap.
func normalize(method string, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		var v any
		err := json.Unmarshal(body, &v)
		return nil, &DecodeError{Method: method, Body: snippet(body), Err: err}
	}

	if !isObject(body) {
		return json.RawMessage(body), nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, &DecodeError{Method: method, Body: snippet(body), Err: err}
	}

	if _, ok := top["error"]; ok {
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, &DecodeError{Method: method, Body: snippet(body), Err: err}
		}
		return nil, newAPIError(int(env.Code), env.Message)
	}

	return unwrapObject(json.RawMessage(body), top), nil
}

// Unwrap removes the single root element Last.fm wraps successful payloads
// in: {"user": {...}} becomes {...}. The rule is purely structural: a
// top-level object with exactly one key is unwrapped once, anything else is
// returned unchanged.
func Unwrap(raw json.RawMessage) json.RawMessage {
	if !isObject(raw) {
		return raw
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return raw
	}
	return unwrapObject(raw, top)
}

func unwrapObject(raw json.RawMessage, top map[string]json.RawMessage) json.RawMessage {
	if len(top) != 1 {
		return raw
	}
	for _, v := range top {
		return v
	}
	return raw
}

// Decode unmarshals a normalized payload into v.
func Decode(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("lastfm: failed to decode payload: %w", err)
	}
	return nil
}

const maxSnippet = 256

func snippet(body []byte) string {
	if len(body) > maxSnippet {
		return string(body[:maxSnippet]) + "..."
	}
	return string(body)
}
