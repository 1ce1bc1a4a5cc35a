package service

import (
	"crypto/rand"
	"encoding/hex"
)

const accessTokenBytes = 128

// TokenIssuer produces a new opaque access token.
type TokenIssuer func() (string, error)

// NewAccessToken returns 128 random bytes, hex encoded. Tokens never expire
// and are issued once per account.
func NewAccessToken() (string, error) {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
