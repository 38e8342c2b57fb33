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

// TestTrack_NowPlaying tests the NowPlaying helper.
func TestTrack_NowPlaying(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		statusCode  int
		track       Track
		wantErr     bool
		errContains string
	}{
		{
			name: "success",
			response: `{"nowplaying": {
				"artist": {"corrected": "0", "#text": "The Beatles"},
				"track": {"corrected": "0", "#text": "Yesterday"},
				"album": {"corrected": "0", "#text": "Help!"},
				"albumArtist": {"corrected": "0", "#text": "The Beatles"},
				"ignoredMessage": {"code": "0", "#text": ""}
			}}`,
			statusCode: http.StatusOK,
			track: Track{
				Artist: "The Beatles",
				Track:  "Yesterday",
				Album:  "Help!",
			},
			wantErr: false,
		},
		{
			name: "with all optional fields",
			response: `{"nowplaying": {
				"artist": {"corrected": "0", "#text": "The Beatles"},
				"track": {"corrected": "0", "#text": "Yesterday"},
				"album": {"corrected": "0", "#text": "Help!"},
				"albumArtist": {"corrected": "0", "#text": "The Beatles"},
				"ignoredMessage": {"code": "0", "#text": ""}
			}}`,
			statusCode: http.StatusOK,
			track: Track{
				Artist:      "The Beatles",
				Track:       "Yesterday",
				Album:       "Help!",
				AlbumArtist: "The Beatles",
				Duration:    125,
				TrackNumber: 1,
				MBID:        "mbid-123",
			},
			wantErr: false,
		},
		{
			name:       "api error - invalid session key",
			response:   `{"error": 9, "message": "Invalid session key - Please re-authenticate"}`,
			statusCode: http.StatusOK,
			track: Track{
				Artist: "The Beatles",
				Track:  "Yesterday",
			},
			wantErr:     true,
			errContains: "error 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				if !assert.NoError(t, r.ParseForm()) {
					return
				}

				assert.Equal(t, "track.updateNowPlaying", r.FormValue("method"))
				assert.Equal(t, tt.track.Artist, r.FormValue("artist"))
				assert.Equal(t, tt.track.Track, r.FormValue("track"))
				assert.Equal(t, "test-session-key", r.FormValue("sk"))

				if tt.track.Album != "" {
					assert.Equal(t, tt.track.Album, r.FormValue("album"))
				}
				if tt.track.AlbumArtist != "" {
					assert.Equal(t, tt.track.AlbumArtist, r.FormValue("albumArtist"))
				}
				if tt.track.Duration > 0 {
					assert.Equal(t, fmt.Sprintf("%d", tt.track.Duration), r.FormValue("duration"))
				} else {
					assert.False(t, r.Form.Has("duration"), "zero duration must be omitted")
				}
				if tt.track.MBID != "" {
					assert.Equal(t, tt.track.MBID, r.FormValue("mbid"))
				}

				w.WriteHeader(tt.statusCode)
				_, err := w.Write([]byte(tt.response))
				assert.NoError(t, err)
			}))
			defer server.Close()

			client, err := NewClient(Config{
				APIKey:     "test-api-key",
				APISecret:  "test-secret",
				SessionKey: "test-session-key",
				BaseURL:    server.URL,
			})
			require.NoError(t, err)

			raw, err := client.Track.NowPlaying(context.Background(), tt.track)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			resp, err := ParseNowPlaying(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.track.Artist, resp.Artist)
			assert.Equal(t, tt.track.Track, resp.Track)
			assert.Zero(t, resp.IgnoredMessage.Code)
		})
	}
}

// TestTrack_ScrobbleBatch tests indexed batch parameters.
func TestTrack_ScrobbleBatch(t *testing.T) {
	ts1 := time.Unix(1287140447, 0)
	ts2 := time.Unix(1287140747, 0)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseForm()) {
			return
		}
		assert.Equal(t, "track.scrobble", r.FormValue("method"))

		want := map[string]string{
			"artist[0]":       "The Beatles",
			"track[0]":        "Yesterday",
			"timestamp[0]":    "1287140447",
			"album[0]":        "Help!",
			"duration[0]":     "125",
			"artist[1]":       "The Beatles",
			"track[1]":        "Let It Be",
			"timestamp[1]":    "1287140747",
			"chosenByUser[1]": "0",
			"sk":              "test-session-key",
		}
		for k, v := range want {
			assert.Equal(t, v, r.FormValue(k), k)
		}
		for _, k := range []string{"album[1]", "duration[1]", "chosenByUser[0]", "artist", "artist[2]"} {
			assert.False(t, r.Form.Has(k), "unexpected parameter %s", k)
		}

		fmt.Fprint(w, `{"scrobbles": {
			"@attr": {"accepted": 1, "ignored": 1},
			"scrobble": [
				{
					"artist": {"corrected": "0", "#text": "The Beatles"},
					"track": {"corrected": "0", "#text": "Yesterday"},
					"album": {"corrected": "0", "#text": "Help!"},
					"albumArtist": {"corrected": "0", "#text": ""},
					"timestamp": "1287140447",
					"ignoredMessage": {"code": "0", "#text": ""}
				},
				{
					"artist": {"corrected": "0", "#text": "The Beatles"},
					"track": {"corrected": "0", "#text": "Let It Be"},
					"album": {"corrected": "0", "#text": ""},
					"albumArtist": {"corrected": "0", "#text": ""},
					"timestamp": "1287140747",
					"ignoredMessage": {"code": "1", "#text": "Artist was ignored"}
				}
			]
		}}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		APISecret:  "test-secret",
		SessionKey: "test-session-key",
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	scrobbles := []Scrobble{
		{
			Track:     Track{Artist: "The Beatles", Track: "Yesterday", Album: "Help!", Duration: 125},
			Timestamp: ts1,
		},
		{
			Track:        Track{Artist: "The Beatles", Track: "Let It Be"},
			Timestamp:    ts2,
			ChosenByUser: Bool(false),
		},
	}

	raw, err := client.Track.ScrobbleBatch(context.Background(), scrobbles)
	require.NoError(t, err)

	resp, err := ParseScrobbles(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, 1, resp.Ignored)
	require.Len(t, resp.Scrobbles, 2)
	assert.True(t, resp.Scrobbles[0].Timestamp.Equal(ts1), "timestamp %v", resp.Scrobbles[0].Timestamp)
	assert.Equal(t, 1, resp.Scrobbles[1].IgnoredMessage.Code)
}

// TestParseScrobbles_Single tests the collapsed single-scrobble shape.
func TestParseScrobbles_Single(t *testing.T) {
	raw := []byte(`{
		"@attr": {"accepted": "1", "ignored": "0"},
		"scrobble": {
			"artist": {"corrected": "0", "#text": "Cher"},
			"track": {"corrected": "0", "#text": "Believe"},
			"timestamp": "1287140447",
			"ignoredMessage": {"code": "0", "#text": ""}
		}
	}`)

	resp, err := ParseScrobbles(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Accepted)
	require.Len(t, resp.Scrobbles, 1)
	assert.Equal(t, "Cher", resp.Scrobbles[0].Artist)
}

// TestTrack_ScrobbleBatch_Limits tests the batch size bounds.
func TestTrack_ScrobbleBatch_Limits(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		APISecret:  "test-secret",
		SessionKey: "test-session-key",
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	scrobbles := make([]Scrobble, MaxBatchSize+1)
	for i := range scrobbles {
		scrobbles[i] = Scrobble{
			Track:     Track{Artist: "Artist", Track: fmt.Sprintf("Track %d", i)},
			Timestamp: time.Now().Add(-time.Duration(i) * time.Minute),
		}
	}

	ctx := context.Background()
	_, err = client.Track.ScrobbleBatch(ctx, scrobbles)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
	_, err = client.Track.ScrobbleBatch(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.False(t, requested, "an invalid batch must not be sent")
}

// TestTrack_NoSessionKey tests that scrobbling without a session key fails
// before any request is sent.
func TestTrack_NoSessionKey(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:    "test-api-key",
		APISecret: "test-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	ctx := context.Background()
	track := Track{Artist: "The Beatles", Track: "Yesterday"}

	_, err = client.Track.NowPlaying(ctx, track)
	assert.ErrorIs(t, err, ErrNoSessionKey)

	_, err = client.Track.ScrobbleBatch(ctx, []Scrobble{{Track: track, Timestamp: time.Now()}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	assert.False(t, requested, "nothing may be sent without a session key")
}

// TestTrack_ContextCancellation tests context cancellation.
func TestTrack_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		fmt.Fprint(w, `{"nowplaying": {}}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		APISecret:  "test-secret",
		SessionKey: "test-session-key",
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Track.NowPlaying(ctx, Track{Artist: "The Beatles", Track: "Yesterday"})
	assert.ErrorIs(t, err, context.Canceled)
}

// Example_nowPlaying demonstrates how to update the now playing status.
func Example_nowPlaying() {
	client, err := NewClient(Config{
		APIKey:     "your-api-key",
		APISecret:  "your-api-secret",
		SessionKey: "your-session-key",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	track := Track{
		Artist:   "The Beatles",
		Track:    "Yesterday",
		Album:    "Help!",
		Duration: 125,
	}

	raw, err := client.Track.NowPlaying(ctx, track)
	if err != nil {
		log.Fatal(err)
	}
	resp, err := ParseNowPlaying(raw)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Now playing: %s - %s\n", resp.Artist, resp.Track)
}

// Example_scrobbleBatch demonstrates how to scrobble multiple tracks at once.
func Example_scrobbleBatch() {
	client, err := NewClient(Config{
		APIKey:     "your-api-key",
		APISecret:  "your-api-secret",
		SessionKey: "your-session-key",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	scrobbles := []Scrobble{
		{
			Track: Track{
				Artist: "The Beatles",
				Track:  "Yesterday",
				Album:  "Help!",
			},
			Timestamp: time.Now().Add(-10 * time.Minute),
		},
		{
			Track: Track{
				Artist: "The Beatles",
				Track:  "Let It Be",
				Album:  "Let It Be",
			},
			Timestamp: time.Now().Add(-5 * time.Minute),
		},
	}

	raw, err := client.Track.ScrobbleBatch(ctx, scrobbles)
	if err != nil {
		log.Fatal(err)
	}
	resp, err := ParseScrobbles(raw)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Scrobbled: %d accepted, %d ignored\n", resp.Accepted, resp.Ignored)

	// Check individual scrobble results
	for i, s := range resp.Scrobbles {
		if s.IgnoredMessage.Code != 0 {
			fmt.Printf("Scrobble %d was ignored: %s\n", i, s.IgnoredMessage.Text)
		}
	}
}
