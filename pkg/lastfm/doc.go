// Package lastfm provides a client library for the Last.fm API 2.0.
//
// # Overview
//
// Every documented API method is available on one of two clients that share
// the same request, signing and response handling:
//
//   - Client blocks the calling goroutine and returns the payload.
//   - AsyncClient returns a *Future immediately and performs the HTTP
//     exchange on its own goroutine.
//
// Methods are grouped by API package (client.User, client.Track, ...) and
// generated from api/api.json. Required parameters are positional; optional
// ones go in a per-method options struct that may be nil.
//
// # Installation
//
//	go get github.com/jfmyers9/lastfmclient/pkg/lastfm
//
// # Quick Start
//
// First, create a client with your API credentials:
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
//	raw, err := client.User.GetRecentTracks(ctx, "rj", &lastfm.UserGetRecentTracksOptions{Limit: 10})
//
// Payloads are returned as json.RawMessage with the single root element
// Last.fm wraps responses in removed, so {"recenttracks": {...}} arrives as
// {...}. Decode them into your own types, or use the typed helpers
// ParseSession, ParseToken, ParseNowPlaying and ParseScrobbles.
//
// # Authentication
//
// Last.fm uses a token-based authentication flow:
//
//  1. Get a token from Last.fm
//  2. Direct the user to authorize the token
//  3. Exchange the token for a session key
//  4. Store and reuse the session key
//
// Example:
//
//	// Step 1: Get token
//	raw, err := client.Auth.GetToken(ctx)
//	token, err := lastfm.ParseToken(raw)
//
//	// Step 2: User authorizes
//	fmt.Println("Please visit:", client.TokenAuthURL(token.Token))
//
//	// Step 3: Get session
//	raw, err = client.Auth.GetSession(ctx, token.Token)
//	session, err := lastfm.ParseSession(raw)
//
//	// Step 4: Save and use session key
//	client.SetSessionKey(session.Key)
//
// Web applications use AuthURL with a callback instead; Last.fm redirects
// back with a token query parameter.
//
// # Scrobbling
//
// Once authenticated, you can scrobble tracks and update now playing status:
//
//	track := lastfm.Track{
//	    Artist: "The Beatles",
//	    Track:  "Yesterday",
//	    Album:  "Help!",
//	}
//	_, err := client.Track.NowPlaying(ctx, track)
//
//	// Batch scrobble (up to 50 tracks)
//	raw, err := client.Track.ScrobbleBatch(ctx, []lastfm.Scrobble{
//	    {Track: track, Timestamp: time.Now()},
//	})
//
// ShouldScrobble tells whether a play counts under the published
// guidelines.
//
// # Error Handling
//
// Last.fm error envelopes become *APIError values tagged with categories
// from a static registry:
//
//	_, err := client.Track.Love(ctx, "Cher", "Believe")
//	switch {
//	case errors.Is(err, lastfm.ErrNoSessionKey):
//	    // authenticate first; nothing was sent
//	case errors.Is(err, lastfm.ErrTemporary):
//	    // try again later
//	case errors.Is(err, lastfm.ErrAuth):
//	    // re-authenticate
//	}
//
// Network failures and unexpected statuses are *TransportError, bodies that
// are not JSON are *DecodeError. The client never retries.
//
// # Concurrency
//
// AsyncClient lets several calls run at once:
//
//	tracks, _ := async.User.GetRecentTracks(ctx, "rj", nil)
//	friends, _ := async.User.GetFriends(ctx, "rj", nil)
//	results, err := lastfm.Gather(ctx, tracks, friends)
//
// # API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm

//go:generate go run ../../internal/tools/specgen code -spec ../../api/api.json -o methods_gen.go
