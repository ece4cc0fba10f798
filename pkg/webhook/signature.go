package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HeaderSignature carries the hex HMAC of the webhook body.
const HeaderSignature = "X-Crypto-Pay-Signature"

// DeriveSecret returns the HMAC key for an app token: SHA-256(token).
func DeriveSecret(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// Sign returns the lowercase hex HMAC-SHA256 of body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the HMAC of body under secret.
// The body is hashed exactly as received.
func Verify(secret []byte, signature string, body []byte) bool {
	want := Sign(secret, body)
	return hmac.Equal([]byte(want), []byte(signature))
}

func VerifyToken(token, signature string, body []byte) bool {
	return Verify(DeriveSecret(token), signature, body)
}
