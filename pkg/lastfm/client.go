// Package lastfm provides a client for the Last.fm API 2.0.
//
// Example usage:
//
//	import "github.com/jfmyers9/lastfmclient/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:    "your-api-key",
//	    APISecret: "your-api-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.Artist.GetInfo(ctx, &lastfm.ArtistGetInfoOptions{Artist: "Cher"})
package lastfm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
)

// Config holds client configuration.
type Config struct {
	APIKey     string          // Required: Last.fm API key
	APISecret  string          // Required: Last.fm API secret, used for signing and never sent
	SessionKey string          // Optional: Session key for authenticated requests
	HTTPClient *http.Client    // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string          // Optional: Base URL for API (defaults to Last.fm API, used for testing)
	AuthURL    string          // Optional: Base URL of the user authorization page
	UserAgent  string          // Optional: User-Agent header
	Logger     *zerolog.Logger // Optional: debug logging of calls (defaults to disabled)
}

const (
	// DefaultBaseURL is the default Last.fm API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	// DefaultAuthURL is where users authorize an application.
	DefaultAuthURL = "https://www.last.fm/api/auth/"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "lastfmclient/1.0"
)

// core holds configuration and the request/response logic shared by the
// blocking and the asynchronous client.
type core struct {
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	baseURL    string
	authURL    string
	userAgent  string
	logger     zerolog.Logger

	mu         sync.RWMutex
	sessionKey string
}

func newCore(cfg Config) (*core, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Field: "APIKey", Reason: "is required"}
	}
	if cfg.APISecret == "" {
		return nil, &ConfigurationError{Field: "APISecret", Reason: "is required"}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = DefaultAuthURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &core{
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		sessionKey: cfg.SessionKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		authURL:    authURL,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// SetSessionKey sets the session key for authenticated requests.
//
// The client never stores the key from auth.getSession by itself; callers
// set it once after a successful exchange. Authenticated calls issued
// before that fail with ErrNoSessionKey.
func (c *core) SetSessionKey(key string) {
	c.mu.Lock()
	c.sessionKey = key
	c.mu.Unlock()
}

// SessionKey returns the current session key.
func (c *core) SessionKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionKey
}

// APIKey returns the public API key.
func (c *core) APIKey() string {
	return c.apiKey
}

// AuthURL returns the web authorization URL. After the user confirms the
// application, Last.fm redirects to callbackURL with a token query parameter
// that can be exchanged with auth.getSession.
func (c *core) AuthURL(callbackURL string) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if callbackURL != "" {
		q.Set("cb", callbackURL)
	}
	return c.authURL + "?" + q.Encode()
}

// TokenAuthURL returns the desktop authorization URL for a token obtained
// from auth.getToken.
func (c *core) TokenAuthURL(token string) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("token", token)
	return c.authURL + "?" + q.Encode()
}

// dispatcher issues one API call. Client and AsyncClient are its two
// implementations; the generated services are written once against it.
type dispatcher[T any] interface {
	dispatch(ctx context.Context, httpMethod, method string, auth bool, params Params) (T, error)
}

// Client is the blocking Last.fm API client. Each call occupies the calling
// goroutine until the response arrives.
type Client struct {
	*core
	Services[json.RawMessage]
}

// NewClient creates a new blocking Last.fm API client.
//
// Returns a *ConfigurationError if APIKey or APISecret is missing.
func NewClient(cfg Config) (*Client, error) {
	co, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	c := &Client{core: co}
	c.Services = newServices[json.RawMessage](c)
	return c, nil
}

// Call performs method and returns the normalized payload.
//
// httpMethod is "GET" or "POST"; auth requests a signed call with the
// session key.
func (c *Client) Call(ctx context.Context, httpMethod, method string, auth bool, params Params) (json.RawMessage, error) {
	return c.dispatch(ctx, httpMethod, method, auth, params)
}

func (c *Client) dispatch(ctx context.Context, httpMethod, method string, auth bool, params Params) (json.RawMessage, error) {
	req, err := c.newRequest(httpMethod, method, auth, params)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}
