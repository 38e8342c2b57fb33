package lastfm

import "time"

// Scrobbling guidelines published with the API. Last.fm itself accepts any
// scrobble; applications are expected to apply these before submitting.
const (
	// MinScrobbleDuration is the shortest track that may be scrobbled.
	MinScrobbleDuration = 30 * time.Second

	// MaxScrobbleWait caps how long a track must play before it counts.
	MaxScrobbleWait = 4 * time.Minute
)

// ScrobbleAfter returns how long a track of the given length must play
// before it may be scrobbled: half its length, capped at four minutes.
// ok is false for tracks shorter than MinScrobbleDuration.
func ScrobbleAfter(length time.Duration) (wait time.Duration, ok bool) {
	if length < MinScrobbleDuration {
		return 0, false
	}
	return min(length/2, MaxScrobbleWait), true
}

// ShouldScrobble reports whether a track of the given length that has
// played for played may be scrobbled.
func ShouldScrobble(length, played time.Duration) bool {
	wait, ok := ScrobbleAfter(length)
	return ok && played >= wait
}

// ScrobbleAfter applies the package level ScrobbleAfter to t.Duration.
// Tracks with an unknown duration are never eligible.
func (t Track) ScrobbleAfter() (time.Duration, bool) {
	return ScrobbleAfter(time.Duration(t.Duration) * time.Second)
}
