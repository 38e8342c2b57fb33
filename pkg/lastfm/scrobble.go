package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// MaxBatchSize is the maximum number of scrobbles allowed in a single batch.
	MaxBatchSize = 50
)

var (
	// ErrEmptyBatch is returned by ScrobbleBatch when given no scrobbles.
	ErrEmptyBatch = errors.New("lastfm: no scrobbles to submit")

	// ErrBatchTooLarge is returned by ScrobbleBatch for more than
	// MaxBatchSize scrobbles.
	ErrBatchTooLarge = fmt.Errorf("lastfm: more than %d scrobbles in one batch", MaxBatchSize)
)

// NowPlaying updates the "now playing" status on Last.fm.
//
// This should be called when a track starts playing. It does not count
// as a scrobble and does not affect play counts.
//
// Requires a session key (see SetSessionKey).
//
// Example:
//
//	track := lastfm.Track{
//	    Artist: "The Beatles",
//	    Track:  "Yesterday",
//	    Album:  "Help!",
//	}
//	raw, err := client.Track.NowPlaying(ctx, track)
//	if err != nil {
//	    log.Printf("Failed to update now playing: %v", err)
//	}
func (s *TrackService[T]) NowPlaying(ctx context.Context, track Track) (T, error) {
	return s.UpdateNowPlaying(ctx, track.Artist, track.Track, &TrackUpdateNowPlayingOptions{
		Album:       track.Album,
		AlbumArtist: track.AlbumArtist,
		Context:     track.Context,
		Duration:    track.Duration,
		MBID:        track.MBID,
		TrackNumber: track.TrackNumber,
	})
}

// ScrobbleBatch submits multiple scrobbles to Last.fm in a single request.
//
// Up to MaxBatchSize scrobbles can be submitted at once. A track should
// only be scrobbled when it is longer than 30 seconds and has been played
// for at least half its duration or 4 minutes, whichever comes first;
// ShouldScrobble applies that rule.
//
// Requires a session key (see SetSessionKey).
//
// Example:
//
//	scrobbles := []lastfm.Scrobble{
//	    {
//	        Track:     lastfm.Track{Artist: "The Beatles", Track: "Yesterday"},
//	        Timestamp: time.Now().Add(-10 * time.Minute),
//	    },
//	    {
//	        Track:     lastfm.Track{Artist: "The Beatles", Track: "Let It Be"},
//	        Timestamp: time.Now().Add(-5 * time.Minute),
//	    },
//	}
//	raw, err := client.Track.ScrobbleBatch(ctx, scrobbles)
//	if err != nil {
//	    log.Printf("Failed to scrobble batch: %v", err)
//	}
//	resp, _ := lastfm.ParseScrobbles(raw)
//	fmt.Printf("Accepted: %d, Ignored: %d\n", resp.Accepted, resp.Ignored)
func (s *TrackService[T]) ScrobbleBatch(ctx context.Context, scrobbles []Scrobble) (T, error) {
	var zero T
	if len(scrobbles) == 0 {
		return zero, ErrEmptyBatch
	}
	if len(scrobbles) > MaxBatchSize {
		return zero, ErrBatchTooLarge
	}

	p := Params{}
	for i, sc := range scrobbles {
		key := func(name string) string {
			return fmt.Sprintf("%s[%d]", name, i)
		}
		p[key("artist")] = sc.Track.Artist
		p[key("track")] = sc.Track.Track
		p[key("timestamp")] = sc.Timestamp

		p.setOpt(key("album"), sc.Track.Album)
		p.setOpt(key("albumArtist"), sc.Track.AlbumArtist)
		p.setOpt(key("context"), sc.Track.Context)
		p.setOpt(key("duration"), sc.Track.Duration)
		p.setOpt(key("mbid"), sc.Track.MBID)
		p.setOpt(key("trackNumber"), sc.Track.TrackNumber)
		p.setOpt(key("chosenByUser"), sc.ChosenByUser)
		p.setOpt(key("streamId"), sc.StreamID)
	}
	return s.call(ctx, "POST", "scrobble", true, p)
}

// nowPlayingPayload is the normalized track.updateNowPlaying body.
type nowPlayingPayload struct {
	Artist         textField    `json:"artist"`
	Track          textField    `json:"track"`
	Album          textField    `json:"album"`
	AlbumArtist    textField    `json:"albumArtist"`
	IgnoredMessage ignoredField `json:"ignoredMessage"`
}

// ParseNowPlaying decodes the payload of track.updateNowPlaying.
func ParseNowPlaying(raw json.RawMessage) (*NowPlayingResponse, error) {
	var p nowPlayingPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse now playing response: %w", err)
	}
	return &NowPlayingResponse{
		Artist:         p.Artist.Text,
		Track:          p.Track.Text,
		Album:          p.Album.Text,
		AlbumArtist:    p.AlbumArtist.Text,
		IgnoredMessage: p.IgnoredMessage.message(),
	}, nil
}

// scrobblesPayload is the normalized track.scrobble body.
type scrobblesPayload struct {
	Attr struct {
		Accepted flexInt `json:"accepted"`
		Ignored  flexInt `json:"ignored"`
	} `json:"@attr"`
	Scrobble oneOrMany[struct {
		Artist         textField    `json:"artist"`
		Track          textField    `json:"track"`
		Album          textField    `json:"album"`
		AlbumArtist    textField    `json:"albumArtist"`
		Timestamp      flexInt      `json:"timestamp"`
		IgnoredMessage ignoredField `json:"ignoredMessage"`
	}] `json:"scrobble"`
}

// ParseScrobbles decodes the payload of track.scrobble.
func ParseScrobbles(raw json.RawMessage) (*ScrobbleResponse, error) {
	var p scrobblesPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse scrobble response: %w", err)
	}

	result := &ScrobbleResponse{
		Accepted:  int(p.Attr.Accepted),
		Ignored:   int(p.Attr.Ignored),
		Scrobbles: make([]ScrobbleResult, len(p.Scrobble)),
	}
	for i, sc := range p.Scrobble {
		result.Scrobbles[i] = ScrobbleResult{
			Artist:         sc.Artist.Text,
			Track:          sc.Track.Text,
			Album:          sc.Album.Text,
			AlbumArtist:    sc.AlbumArtist.Text,
			Timestamp:      time.Unix(int64(sc.Timestamp), 0).UTC(),
			IgnoredMessage: sc.IgnoredMessage.message(),
		}
	}
	return result, nil
}
