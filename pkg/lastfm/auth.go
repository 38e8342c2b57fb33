package lastfm

import (
	"encoding/json"
	"fmt"
)

// sessionPayload is the normalized auth.getSession body.
type sessionPayload struct {
	Name       string   `json:"name"`
	Key        string   `json:"key"`
	Subscriber flexBool `json:"subscriber"`
}

// ParseSession decodes the payload of auth.getSession or
// auth.getMobileSession.
//
// Example:
//
//	raw, err := client.Auth.GetSession(ctx, token.Token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session, err := lastfm.ParseSession(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetSessionKey(session.Key)
//	// Store session.Key for future use
func ParseSession(raw json.RawMessage) (*Session, error) {
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse session: %w", err)
	}
	if p.Key == "" {
		return nil, fmt.Errorf("lastfm: session response has no key")
	}
	return &Session{
		Key:        p.Key,
		Username:   p.Name,
		Subscriber: bool(p.Subscriber),
	}, nil
}

// ParseToken decodes the payload of auth.getToken.
//
// After obtaining a token, the user must authorize it by visiting the URL
// returned by TokenAuthURL before it can be exchanged for a session.
//
// Example:
//
//	raw, err := client.Auth.GetToken(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	token, err := lastfm.ParseToken(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Visit:", client.TokenAuthURL(token.Token))
func ParseToken(raw json.RawMessage) (*Token, error) {
	var tok string
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse token: %w", err)
	}
	if tok == "" {
		return nil, fmt.Errorf("lastfm: empty token")
	}
	return &Token{Token: tok}, nil
}
