package genvid

import (
	"testing"

	"github.com/golang-jwt/jwt"
)

func TestStaticToken(t *testing.T) {
	token, err := StaticToken("opaque-token").Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "opaque-token" {
		t.Errorf("expected token to pass through unchanged, got '%s'", token)
	}

	if _, err := StaticToken("").Token(); err == nil {
		t.Error("empty token should return an error")
	}
}

func TestKeyPairToken(t *testing.T) {
	pair := KeyPair{AccessKey: "test_access", SecretKey: "test_secret"}

	tokenString, err := pair.Token()
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	if err != nil {
		t.Fatalf("minted token failed verification: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["iss"] != "test_access" {
		t.Errorf("expected iss 'test_access', got '%v'", claims["iss"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected exp claim")
	}
	if _, ok := claims["nbf"]; !ok {
		t.Error("expected nbf claim")
	}
}

func TestKeyPairToken_MissingKeys(t *testing.T) {
	if _, err := (KeyPair{AccessKey: "only_access"}).Token(); err == nil {
		t.Error("missing secret key should return an error")
	}

	if _, err := (KeyPair{SecretKey: "only_secret"}).Token(); err == nil {
		t.Error("missing access key should return an error")
	}
}

func TestParseKeyPair(t *testing.T) {
	pair, err := ParseKeyPair("test_access, test_secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessKey != "test_access" || pair.SecretKey != "test_secret" {
		t.Errorf("unexpected key pair: %+v", pair)
	}

	if _, err := ParseKeyPair("just_one_key"); err == nil {
		t.Error("expected error for key without separator")
	}
}
