// Package signature validates the channel signature the platform attaches to webhook deliveries.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign returns the base64 encoded HMAC-SHA256 of body keyed by secret.
func Sign(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	// hash.Hash.Write never returns an error
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the base64 HMAC-SHA256 of body keyed by secret.
// Empty inputs never verify.
func Verify(body, secret []byte, signature string) bool {
	if len(body) == 0 || len(secret) == 0 || signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(body, secret)), []byte(signature))
}
