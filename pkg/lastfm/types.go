package lastfm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Track represents a music track for scrobbling or now playing updates.
type Track struct {
	Artist      string // Required: Artist name
	Track       string // Required: Track name
	Album       string // Optional: Album name
	AlbumArtist string // Optional: Album artist (if different from track artist)
	Duration    int    // Optional: Track duration in seconds
	TrackNumber int    // Optional: Track number on album
	MBID        string // Optional: MusicBrainz track ID
	Context     string // Optional: Sub-client version
}

// Scrobble represents a single scrobble with timestamp.
type Scrobble struct {
	Track        Track     // The track being scrobbled
	Timestamp    time.Time // When the track started playing
	ChosenByUser *bool     // Optional: false when picked by a radio or recommendation service
	StreamID     string    // Optional: Last.fm radio stream id
}

// Token represents an authentication token from auth.getToken.
type Token struct {
	Token string // The authentication token
}

// Session represents an authenticated session from auth.getSession or
// auth.getMobileSession.
type Session struct {
	Key        string // Session key for authenticated requests
	Username   string // Last.fm username
	Subscriber bool   // Whether user is a subscriber
}

// IgnoredMessage explains why Last.fm ignored a scrobble or now playing
// update. Code 0 means it was not ignored.
type IgnoredMessage struct {
	Code int
	Text string
}

// NowPlayingResponse represents the response from track.updateNowPlaying.
type NowPlayingResponse struct {
	Artist         string
	Track          string
	Album          string
	AlbumArtist    string
	IgnoredMessage IgnoredMessage
}

// ScrobbleResult is the outcome of one scrobble in a batch.
type ScrobbleResult struct {
	Artist         string
	Track          string
	Album          string
	AlbumArtist    string
	Timestamp      time.Time
	IgnoredMessage IgnoredMessage
}

// ScrobbleResponse represents the response from track.scrobble.
type ScrobbleResponse struct {
	Accepted  int // Number of scrobbles accepted
	Ignored   int // Number of scrobbles ignored
	Scrobbles []ScrobbleResult
}

// textField is Last.fm's JSON rendering of an XML element with attributes:
//
//	{"corrected": "0", "#text": "Cher"}
type textField struct {
	Text      string  `json:"#text"`
	Corrected flexInt `json:"corrected"`
}

type ignoredField struct {
	Code flexInt `json:"code"`
	Text string  `json:"#text"`
}

func (f ignoredField) message() IgnoredMessage {
	return IgnoredMessage{Code: int(f.Code), Text: f.Text}
}

// flexBool accepts true, 1 and "1" (and their false counterparts).
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch string(bytes.Trim(b, `"`)) {
	case "1", "true":
		*f = true
	case "0", "false", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %s", b)
	}
	return nil
}

// oneOrMany decodes a list that Last.fm collapses to a bare object when it
// holds a single element.
type oneOrMany[T any] []T

func (o *oneOrMany[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimLeft(b, " \t\r\n")
	if len(b) > 0 && b[0] == '[' {
		var many []T
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*o = many
		return nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*o = oneOrMany[T]{one}
	return nil
}
