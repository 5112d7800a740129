package genvid

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// Credential supplies the bearer token attached to outbound requests
type Credential interface {
	Token() (string, error)
}

// StaticToken is an opaque bearer token passed through unchanged
type StaticToken string

func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", errors.New("token cannot be empty")
	}
	return string(t), nil
}

// KeyPair mints short-lived HS256 bearer tokens from an access/secret key
// pair, for providers that authenticate with signed JWTs instead of a fixed
// token.
type KeyPair struct {
	AccessKey string
	SecretKey string
}

// Token creates a JWT token with proper JWT signature
func (k KeyPair) Token() (string, error) {
	if k.AccessKey == "" || k.SecretKey == "" {
		return "", errors.New("access key and secret key are required")
	}

	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"iss": k.AccessKey,
		"exp": now + 1800,
		"nbf": now - 5,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["typ"] = "JWT"
	return token.SignedString([]byte(k.SecretKey))
}

// ParseKeyPair splits a combined key in "access_key,secret_key" format
func ParseKeyPair(apiKey string) (KeyPair, error) {
	keyParts := strings.Split(apiKey, ",")
	if len(keyParts) != 2 {
		return KeyPair{}, errors.New("invalid API key format, expected 'access_key,secret_key'")
	}

	return KeyPair{
		AccessKey: strings.TrimSpace(keyParts[0]),
		SecretKey: strings.TrimSpace(keyParts[1]),
	}, nil
}
