package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

// sessionAPI answers auth.getSession with the given bodies in order,
// repeating the last one.
func sessionAPI(t *testing.T, bodies ...string) (*lastfm.Client, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(atomic.AddInt32(&calls, 1))
		if n > len(bodies) {
			n = len(bodies)
		}
		fmt.Fprint(w, bodies[n-1])
	}))
	t.Cleanup(server.Close)

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:    "key",
		APISecret: "secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)
	return client, &calls
}

const (
	unauthorizedToken = `{"error":14,"message":"This token has not been authorized"}`
	sessionBody       = `{"session":{"name":"rj","key":"sk-1","subscriber":"1"}}`
)

func TestExchangeToken(t *testing.T) {
	t.Run("succeeds after the user authorizes", func(t *testing.T) {
		client, calls := sessionAPI(t, unauthorizedToken, sessionBody)

		sess, err := exchangeToken(context.Background(), client, "tok", 3, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "rj", sess.Username)
		assert.Equal(t, "sk-1", sess.Key)
		assert.True(t, sess.Subscriber)
		assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		client, calls := sessionAPI(t, unauthorizedToken)

		_, err := exchangeToken(context.Background(), client, "tok", 3, time.Millisecond)
		assert.ErrorIs(t, err, &lastfm.APIError{Code: lastfm.ErrCodeUnauthorizedToken})
		assert.Equal(t, int32(3), atomic.LoadInt32(calls))
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		client, calls := sessionAPI(t, `{"error":10,"message":"Invalid API key"}`)

		_, err := exchangeToken(context.Background(), client, "tok", 3, time.Millisecond)
		assert.ErrorIs(t, err, lastfm.ErrAuth)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		client, _ := sessionAPI(t, unauthorizedToken)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := exchangeToken(ctx, client, "tok", 3, time.Hour)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
