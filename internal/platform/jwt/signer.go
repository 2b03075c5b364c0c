package jwt

import (
	"time"
)

// Claims represents the identity claims carried by a session token.
type Claims struct {
	UserID string
	Email  string
	Name   string
}

// Signer defines methods for signing and verifying session tokens.
type Signer interface {
	Sign(claims Claims, audience []string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
