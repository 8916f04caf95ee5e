package utils

import (
	"testing"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/testutils"
)

func TestGenerateAndParseLoginToken(t *testing.T) {
	testutils.SetupConfig(t)

	token, err := GenerateLoginToken(42, "demo@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken failed: %v", err)
	}

	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken failed: %v", err)
	}
	if claims.ID != 42 {
		t.Errorf("expected id 42, got %d", claims.ID)
	}
	if claims.Email != "demo@example.com" {
		t.Errorf("expected email demo@example.com, got %q", claims.Email)
	}
	if claims.Type != "login" {
		t.Errorf("expected type login, got %q", claims.Type)
	}
}

func TestParseExpiredLoginToken(t *testing.T) {
	testutils.SetupConfig(t)

	token, err := GenerateLoginToken(1, "demo@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateLoginToken failed: %v", err)
	}

	if _, err := ParseLoginToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseGarbageToken(t *testing.T) {
	testutils.SetupConfig(t)

	if _, err := ParseLoginToken("not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
