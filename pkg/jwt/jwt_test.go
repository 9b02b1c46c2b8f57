package jwt

import (
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	token, err := GenerateSession("kasir1", "user", time.Hour)
	if err != nil {
		t.Fatalf("generate session failed: %v", err)
	}

	claims, err := ValidateSession(token)
	if err != nil {
		t.Fatalf("validate session failed: %v", err)
	}
	if claims.Username != "kasir1" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	token, err := GenerateSession("kasir1", "user", -time.Minute)
	if err != nil {
		t.Fatalf("generate session failed: %v", err)
	}
	if _, err := ValidateSession(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestForgedTokenRejected(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	token, err := GenerateSession("kasir1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("generate session failed: %v", err)
	}

	t.Setenv("SESSION_SECRET", "a-different-secret")
	if _, err := ValidateSession(token); err == nil {
		t.Fatal("expected token signed with other secret to be rejected")
	}
}
