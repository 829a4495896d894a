package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()
}

func TestJWT_RoundTrip(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT(42, "a@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID = %d, want 42", userID)
	}
}

func TestJWT_RejectsExpiredToken(t *testing.T) {
	initTestJWT(t)

	// Token issued 25 hours ago with the usual 24h lifetime.
	past := time.Now().Add(-25 * time.Hour)
	claims := jwt.MapClaims{
		"user_id": float64(42),
		"email":   "a@x.com",
		"iat":     past.Unix(),
		"nbf":     past.Unix(),
		"exp":     past.Add(24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(expired); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWT_RejectsWrongSignature(t *testing.T) {
	initTestJWT(t)

	claims := jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(forged); err == nil {
		t.Fatal("expected forged token to be rejected")
	}
}
