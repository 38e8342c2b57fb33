package lastfm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCore(t *testing.T, sessionKey string) *core {
	t.Helper()
	c, err := newCore(Config{APIKey: "K", APISecret: "S", SessionKey: sessionKey})
	require.NoError(t, err)
	return c
}

func TestBuildParams_Defaults(t *testing.T) {
	c := newTestCore(t, "")

	raw := Params{"artist": "Cher", "mbid": nil, "callback": "jsonp"}
	params, signed, err := c.buildParams("artist.getInfo", raw, false)
	require.NoError(t, err)

	assert.False(t, signed)
	assert.Equal(t, Params{
		"artist":  "Cher",
		"format":  "json",
		"api_key": "K",
		"method":  "artist.getInfo",
	}, params)

	// The caller's map is left alone.
	assert.Equal(t, Params{"artist": "Cher", "mbid": nil, "callback": "jsonp"}, raw)
}

func TestBuildParams_Authenticated(t *testing.T) {
	c := newTestCore(t, "SK")

	params, signed, err := c.buildParams("track.love", Params{"artist": "Cher", "track": "Believe"}, true)
	require.NoError(t, err)

	assert.True(t, signed)
	assert.Equal(t, "SK", params["sk"])

	unsigned := Params{}
	for k, v := range params {
		if k != "api_sig" {
			unsigned[k] = v
		}
	}
	assert.Equal(t, calculateSignature(unsigned, "S"), params["api_sig"])
}

func TestBuildParams_SessionMethods(t *testing.T) {
	for _, method := range []string{MethodGetSession, MethodGetToken, MethodGetMobileSession} {
		t.Run(method, func(t *testing.T) {
			c := newTestCore(t, "SK")

			params, signed, err := c.buildParams(method, Params{"token": "T"}, false)
			require.NoError(t, err)

			assert.True(t, signed)
			assert.NotContains(t, params, "sk")
			assert.NotEmpty(t, params["api_sig"])
		})
	}
}

func TestBuildParams_UserGetInfo(t *testing.T) {
	t.Run("without user needs a session", func(t *testing.T) {
		c := newTestCore(t, "")
		_, _, err := c.buildParams(MethodUserGetInfo, Params{}, false)
		assert.ErrorIs(t, err, ErrNoSessionKey)
	})

	t.Run("without user is signed with sk", func(t *testing.T) {
		c := newTestCore(t, "SK")
		params, signed, err := c.buildParams(MethodUserGetInfo, Params{}, false)
		require.NoError(t, err)
		assert.True(t, signed)
		assert.Equal(t, "SK", params["sk"])
	})

	t.Run("with user is public", func(t *testing.T) {
		c := newTestCore(t, "")
		params, signed, err := c.buildParams(MethodUserGetInfo, Params{"user": "rj"}, false)
		require.NoError(t, err)
		assert.False(t, signed)
		assert.NotContains(t, params, "api_sig")
	})

	t.Run("nil user counts as absent", func(t *testing.T) {
		c := newTestCore(t, "")
		_, _, err := c.buildParams(MethodUserGetInfo, Params{"user": nil}, false)
		assert.ErrorIs(t, err, ErrNoSessionKey)
	})
}

func TestBuildParams_NoSessionKey(t *testing.T) {
	c := newTestCore(t, "")

	_, _, err := c.buildParams("track.love", Params{}, true)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "SessionKey", cfgErr.Field)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetOpt(t *testing.T) {
	p := Params{}
	p.setOpt("empty", "")
	p.setOpt("zero", 0)
	p.setOpt("nilbool", (*bool)(nil))
	p.setOpt("nil", nil)
	p.setOpt("name", "Cher")
	p.setOpt("limit", 10)
	p.setOpt("autocorrect", Bool(false))

	assert.Equal(t, Params{"name": "Cher", "limit": 10, "autocorrect": false}, p)
}

func TestSetEach(t *testing.T) {
	p := Params{}
	setEach(p, "artist", []string{"Cher", "Madonna"})
	setEach(p, "timestamp", []int{1, 2})
	setEach(p, "album", []string(nil))

	assert.Equal(t, Params{
		"artist[0]":    "Cher",
		"artist[1]":    "Madonna",
		"timestamp[0]": 1,
		"timestamp[1]": 2,
	}, p)
}

func TestParamsValues(t *testing.T) {
	v := Params{"autocorrect": true, "limit": 5, "artist": "Cher"}.values()
	assert.Equal(t, "1", v.Get("autocorrect"))
	assert.Equal(t, "5", v.Get("limit"))
	assert.Equal(t, "artist=Cher&autocorrect=1&limit=5", v.Encode())
}
