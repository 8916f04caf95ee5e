package utils

import "testing"

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}
	if len(token) != 32 {
		t.Fatalf("expected 32 hex chars, got %d (%q)", len(token), token)
	}

	other, err := GenerateShareToken()
	if err != nil {
		t.Fatalf("GenerateShareToken failed: %v", err)
	}
	if token == other {
		t.Fatalf("two generated tokens collided: %q", token)
	}
}

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}
}

func TestGenerateDownloadPin(t *testing.T) {
	for i := 0; i < 20; i++ {
		pin, err := GenerateDownloadPin()
		if err != nil {
			t.Fatalf("GenerateDownloadPin failed: %v", err)
		}
		if !ValidDownloadPin(pin) {
			t.Fatalf("generated PIN %q is not four digits", pin)
		}
	}
}

func TestValidDownloadPin(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	for _, pin := range valid {
		if !ValidDownloadPin(pin) {
			t.Errorf("expected %q to be valid", pin)
		}
	}

	invalid := []string{"", "123", "12345", "12a4", " 123", "12.4"}
	for _, pin := range invalid {
		if ValidDownloadPin(pin) {
			t.Errorf("expected %q to be invalid", pin)
		}
	}
}

func TestPinMatches(t *testing.T) {
	if !PinMatches("1234", "1234") {
		t.Error("identical PINs should match")
	}
	if PinMatches("1234", "4321") {
		t.Error("different PINs should not match")
	}
	if PinMatches("", "") {
		t.Error("empty stored PIN must never match")
	}
	if PinMatches("1234", "") {
		t.Error("empty submission must never match")
	}
}
