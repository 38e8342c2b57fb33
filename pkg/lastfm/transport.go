package lastfm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// request is a fully built, signed API call ready for transport.
type request struct {
	httpMethod string
	method     string
	signed     bool
	params     Params
}

// newRequest runs the request builder. No I/O happens here, so
// configuration errors surface before anything is dispatched.
func (c *core) newRequest(httpMethod, method string, auth bool, raw Params) (*request, error) {
	httpMethod = strings.ToUpper(httpMethod)
	if httpMethod == "" {
		httpMethod = http.MethodGet
	}
	params, signed, err := c.buildParams(method, raw, auth)
	if err != nil {
		return nil, err
	}
	return &request{
		httpMethod: httpMethod,
		method:     method,
		signed:     signed,
		params:     params,
	}, nil
}

// roundTrip sends req and normalizes the response. It is the only place
// that blocks; nothing is retried.
func (c *core) roundTrip(ctx context.Context, req *request) (json.RawMessage, error) {
	start := time.Now()
	c.logger.Debug().
		Str("method", req.method).
		Str("http", req.httpMethod).
		Bool("signed", req.signed).
		Msg("lastfm: calling")

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, &TransportError{Method: req.method, Err: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", req.method).Msg("lastfm: transport error")
		return nil, &TransportError{Method: req.method, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Method: req.method, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	c.logger.Debug().
		Str("method", req.method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("lastfm: response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Last.fm reports some API errors with a 4xx/5xx status and an
		// error body; those are API errors, not transport failures.
		if _, err := normalize(req.method, body); err != nil {
			if _, ok := err.(*APIError); ok {
				return nil, err
			}
		}
		return nil, &TransportError{Method: req.method, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return normalize(req.method, body)
}

// newHTTPRequest encodes params as a query string for GET and as a form
// body for POST.
func (c *core) newHTTPRequest(ctx context.Context, req *request) (*http.Request, error) {
	encoded := req.params.values().Encode()

	if req.httpMethod == http.MethodPost {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		httpReq.Header.Set("User-Agent", c.userAgent)
		return httpReq, nil
	}

	target := c.baseURL
	if strings.Contains(target, "?") {
		target += "&" + encoded
	} else {
		target += "?" + encoded
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.httpMethod, target, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	return httpReq, nil
}
