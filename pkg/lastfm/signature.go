package lastfm

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// unsignedParams never take part in the signature.
var unsignedParams = map[string]bool{
	"format":   true,
	"callback": true,
	"api_sig":  true,
}

// calculateSignature generates an MD5 signature for Last.fm API requests.
//
// The signature is calculated by:
// 1. Sorting parameter keys byte-wise, skipping format and callback
// 2. Concatenating key+value pairs (e.g., "keyAvalueAkeyBvalueB")
// 3. Appending the API secret
// 4. Taking the MD5 hash of the UTF-8 result
//
// Values are stringified with formatValue, the same form sent on the wire.
func calculateSignature(params Params, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if unsignedParams[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(formatValue(params[k]))
	}
	sb.WriteString(secret)

	sum := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// Sign returns the api_sig value Last.fm expects for params and secret.
//
// Nil values are ignored, matching what NewClient-built requests send.
func Sign(params Params, secret string) string {
	return calculateSignature(params.compact(), secret)
}
