package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/octagram/jaemin/pkg/domain/types"
)

// verifySignature checks an x-hub-signature-256 header value against the
// HMAC-SHA256 of the exact body bytes. The comparison is constant-time; a
// malformed header (wrong prefix, wrong length) simply fails it.
func verifySignature(secret types.WebhookSecret, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
