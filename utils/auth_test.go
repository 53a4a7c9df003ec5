package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndParseJWT(t *testing.T) {
	JwtKey = []byte("test_secret")

	token, err := GenerateJWT("64f1a2b3c4d5e6f7a8b9c0d1", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Fatalf("unexpected user id %q", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Fatal("admin flag lost in round trip")
	}

	wantExpiry := time.Now().Add(TokenValidity).Unix()
	if diff := wantExpiry - claims.ExpiresAt; diff < -5 || diff > 5 {
		t.Fatalf("expiry off by %d seconds", diff)
	}
}

func TestParseJWTRejectsWrongKey(t *testing.T) {
	JwtKey = []byte("key_one")
	token, err := GenerateJWT("someid", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	JwtKey = []byte("key_two")
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("token signed with a different key must not parse")
	}
}

func TestParseJWTRejectsUnsignedToken(t *testing.T) {
	JwtKey = []byte("test_secret")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "someid",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenValidity).Unix(),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(signed); err == nil {
		t.Fatal("token with alg=none must not parse")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	JwtKey = []byte("test_secret")

	for _, tok := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := ParseJWT(tok); err == nil {
			t.Errorf("token %q should not parse", tok)
		}
	}
}
