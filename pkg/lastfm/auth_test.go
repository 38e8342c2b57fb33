package lastfm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuth_GetToken tests auth.getToken through the generated surface.
func TestAuth_GetToken(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		statusCode  int
		wantToken   string
		wantErr     bool
		errContains string
	}{
		{
			name:       "success",
			response:   `{"token": "test-token-123"}`,
			statusCode: http.StatusOK,
			wantToken:  "test-token-123",
			wantErr:    false,
		},
		{
			name:        "api error - invalid api key",
			response:    `{"error": 10, "message": "Invalid API key"}`,
			statusCode:  http.StatusOK,
			wantErr:     true,
			errContains: "error 10",
		},
		{
			name:        "api error - service offline",
			response:    `{"error": 11, "message": "Service Offline"}`,
			statusCode:  http.StatusOK,
			wantErr:     true,
			errContains: "error 11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)

				q := r.URL.Query()
				assert.Equal(t, "auth.getToken", q.Get("method"))
				assert.Equal(t, "test-api-key", q.Get("api_key"))
				assert.Equal(t, "json", q.Get("format"))
				assert.NotEmpty(t, q.Get("api_sig"))
				assert.False(t, q.Has("sk"), "auth.getToken must not send sk")

				w.WriteHeader(tt.statusCode)
				_, err := w.Write([]byte(tt.response))
				assert.NoError(t, err)
			}))
			defer server.Close()

			client, err := NewClient(Config{
				APIKey:    "test-api-key",
				APISecret: "test-secret",
				BaseURL:   server.URL,
			})
			require.NoError(t, err)

			raw, err := client.Auth.GetToken(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			token, err := ParseToken(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token.Token)
		})
	}
}

// TestTokenAuthURL tests the desktop authorization URL.
func TestTokenAuthURL(t *testing.T) {
	client, err := NewClient(Config{
		APIKey:    "my-api-key",
		APISecret: "my-secret",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://www.last.fm/api/auth/?api_key=my-api-key&token=test-token-123",
		client.TokenAuthURL("test-token-123"))
}

// TestAuthURL tests the web authorization URL with and without a callback.
func TestAuthURL(t *testing.T) {
	client, err := NewClient(Config{
		APIKey:    "my-api-key",
		APISecret: "my-secret",
	})
	require.NoError(t, err)

	tests := []struct {
		callback string
		want     string
	}{
		{"", "https://www.last.fm/api/auth/?api_key=my-api-key"},
		{
			"http://localhost:8888/callback",
			"https://www.last.fm/api/auth/?api_key=my-api-key&cb=http%3A%2F%2Flocalhost%3A8888%2Fcallback",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, client.AuthURL(tt.callback), "AuthURL(%q)", tt.callback)
	}
}

// TestAuth_GetSession tests auth.getSession and ParseSession.
func TestAuth_GetSession(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		statusCode     int
		wantKey        string
		wantUsername   string
		wantSubscriber bool
		wantErr        bool
		wantCode       int
	}{
		{
			name:           "success - subscriber",
			response:       `{"session": {"name": "testuser", "key": "session-key-abc123", "subscriber": 1}}`,
			statusCode:     http.StatusOK,
			wantKey:        "session-key-abc123",
			wantUsername:   "testuser",
			wantSubscriber: true,
		},
		{
			name:           "success - non-subscriber as string",
			response:       `{"session": {"name": "freeuser", "key": "free-session-key", "subscriber": "0"}}`,
			statusCode:     http.StatusOK,
			wantKey:        "free-session-key",
			wantUsername:   "freeuser",
			wantSubscriber: false,
		},
		{
			name:       "unauthorized token",
			response:   `{"error": 14, "message": "Unauthorized Token - This token has not been authorized"}`,
			statusCode: http.StatusOK,
			wantErr:    true,
			wantCode:   ErrCodeUnauthorizedToken,
		},
		{
			name:       "string error code with error status",
			response:   `{"error": "4", "message": "Authentication Failed"}`,
			statusCode: http.StatusForbidden,
			wantErr:    true,
			wantCode:   ErrCodeAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "auth.getSession", q.Get("method"))
				assert.Equal(t, "test-token", q.Get("token"))
				assert.NotEmpty(t, q.Get("api_sig"))
				assert.False(t, q.Has("sk"), "auth.getSession must not send sk")

				w.WriteHeader(tt.statusCode)
				_, err := w.Write([]byte(tt.response))
				assert.NoError(t, err)
			}))
			defer server.Close()

			// A stale session key must not leak into auth.getSession.
			client, err := NewClient(Config{
				APIKey:     "test-api-key",
				APISecret:  "test-secret",
				SessionKey: "stale-key",
				BaseURL:    server.URL,
			})
			require.NoError(t, err)

			raw, err := client.Auth.GetSession(context.Background(), "test-token")
			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.NoError(t, err)

			session, err := ParseSession(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, session.Key)
			assert.Equal(t, tt.wantUsername, session.Username)
			assert.Equal(t, tt.wantSubscriber, session.Subscriber)
		})
	}
}

// TestAuth_GetMobileSession tests that auth.getMobileSession is a signed POST.
func TestAuth_GetMobileSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		if !assert.NoError(t, r.ParseForm()) {
			return
		}
		assert.Equal(t, "rj", r.PostForm.Get("username"))
		assert.NotEmpty(t, r.PostForm.Get("api_sig"))
		fmt.Fprint(w, `{"session": {"name": "rj", "key": "mobile-key", "subscriber": 0}}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:    "test-api-key",
		APISecret: "test-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	raw, err := client.Auth.GetMobileSession(context.Background(), "hunter2", "rj")
	require.NoError(t, err)
	session, err := ParseSession(raw)
	require.NoError(t, err)
	assert.Equal(t, "mobile-key", session.Key)
}

// TestAuth_GetToken_ContextCancellation tests context cancellation.
func TestAuth_GetToken_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate slow response
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"token": "test-token"}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:    "test-api-key",
		APISecret: "test-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.Auth.GetToken(ctx)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestAuth_ServerError tests that a 5xx without an error body is a
// transport error and is not retried.
func TestAuth_ServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "Service Unavailable")
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:    "test-api-key",
		APISecret: "test-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	_, err = client.Auth.GetToken(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := ParseToken([]byte(`{"token": 5}`))
	assert.Error(t, err, "non-string token")
	_, err = ParseToken([]byte(`""`))
	assert.Error(t, err, "empty token")
}

func TestParseSession_MissingKey(t *testing.T) {
	_, err := ParseSession([]byte(`{"name": "rj", "subscriber": 0}`))
	assert.Error(t, err)
}

// Example_authFlow demonstrates the desktop authentication flow.
func Example_authFlow() {
	// Create a new client with your API credentials
	client, err := NewClient(Config{
		APIKey:    "your-api-key",
		APISecret: "your-api-secret",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Step 1: Get a request token
	raw, err := client.Auth.GetToken(ctx)
	if err != nil {
		log.Fatal(err)
	}
	token, err := ParseToken(raw)
	if err != nil {
		log.Fatal(err)
	}

	// Step 2: Direct the user to authorize the token
	fmt.Println("Please visit:", client.TokenAuthURL(token.Token))
	fmt.Print("Press enter after authorizing...")
	fmt.Scanln()

	// Step 3: Exchange the token for a session key
	raw, err = client.Auth.GetSession(ctx, token.Token)
	if err != nil {
		log.Fatal(err)
	}
	session, err := ParseSession(raw)
	if err != nil {
		log.Fatal(err)
	}

	// Step 4: Use the session key for authenticated calls
	client.SetSessionKey(session.Key)
	fmt.Printf("Authenticated as %s\n", session.Username)
}

// ExampleParseSession demonstrates decoding an auth.getSession payload.
func ExampleParseSession() {
	session, err := ParseSession([]byte(`{"name": "rj", "key": "d580d57f32848f5dcf574d1ce18d78b2", "subscriber": 0}`))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(session.Username, session.Key)
	// Output: rj d580d57f32848f5dcf574d1ce18d78b2
}

// Example_authURL demonstrates the web authorization URL.
func Example_authURL() {
	client, err := NewClient(Config{
		APIKey:    "your-api-key",
		APISecret: "your-api-secret",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(client.AuthURL("http://localhost:8888/callback"))
	// Output: https://www.last.fm/api/auth/?api_key=your-api-key&cb=http%3A%2F%2Flocalhost%3A8888%2Fcallback
}
