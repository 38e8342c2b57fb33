package lastfm

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Params holds request parameters keyed by Last.fm parameter name.
//
// Values may be strings, booleans (sent as 1/0), integers, floats,
// time.Time (sent as Unix seconds) or fmt.Stringer. Nil values are
// dropped before the request is signed.
type Params map[string]any

// Methods with special authentication handling.
const (
	MethodGetSession       = "auth.getSession"
	MethodGetToken         = "auth.getToken"
	MethodGetMobileSession = "auth.getMobileSession"
	MethodUserGetInfo      = "user.getInfo"
)

// sessionMethods are signed but never carry an sk parameter; they are how
// a session key is obtained in the first place.
var sessionMethods = map[string]bool{
	MethodGetSession:       true,
	MethodGetToken:         true,
	MethodGetMobileSession: true,
}

// compact returns a copy without nil values and without the local-only
// callback key.
func (p Params) compact() Params {
	out := make(Params, len(p)+4)
	for k, v := range p {
		if v == nil || k == "callback" {
			continue
		}
		out[k] = v
	}
	return out
}

// values encodes p for the query string or form body.
func (p Params) values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, formatValue(val))
	}
	return v
}

// setOpt stores an optional value unless it is the zero value for its type.
func (p Params) setOpt(key string, v any) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return
		}
	case int:
		if x == 0 {
			return
		}
	case *bool:
		if x == nil {
			return
		}
		v = *x
	case nil:
		return
	}
	p[key] = v
}

// setEach expands a multi-valued parameter into indexed keys:
// artist[0], artist[1], ...
func setEach[V any](p Params, key string, vals []V) {
	for i, v := range vals {
		p[fmt.Sprintf("%s[%d]", key, i)] = v
	}
}

// formatValue converts a parameter value to its wire and signature form.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case *bool:
		if x == nil {
			return ""
		}
		return formatValue(*x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return strconv.FormatInt(x.Unix(), 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// buildParams assembles the final parameter set for method.
//
// It drops nil values and callback, adds format, api_key and method, then
// decides whether the call is authenticated: when requested, for the session
// acquisition methods, and for user.getInfo without an explicit user (which
// targets the session's own user). Authenticated calls other than session
// acquisition carry sk; all authenticated calls carry api_sig.
func (c *core) buildParams(method string, raw Params, auth bool) (Params, bool, error) {
	params := raw.compact()
	params["format"] = "json"
	params["api_key"] = c.apiKey
	params["method"] = method

	gettingSession := sessionMethods[method]
	_, hasUser := params["user"]
	needsAuth := auth || gettingSession || (method == MethodUserGetInfo && !hasUser)

	if !needsAuth {
		return params, false, nil
	}

	if !gettingSession {
		sk := c.SessionKey()
		if sk == "" {
			return nil, false, ErrNoSessionKey
		}
		params["sk"] = sk
	}

	params["api_sig"] = calculateSignature(params, c.apiSecret)
	return params, true, nil
}

// Bool returns a pointer to v, for optional boolean parameters.
func Bool(v bool) *bool {
	return &v
}
