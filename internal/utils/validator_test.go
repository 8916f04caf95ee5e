package utils

import (
	"bytes"
	"strings"
	"testing"
)

// pngHeader is the 8-byte PNG signature followed by padding so the sniffer
// has a full block to look at.
func pngHeader() []byte {
	sig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(sig, make([]byte, 32)...)
}

func TestValidatePassword(t *testing.T) {
	if ok, msg := ValidatePassword("12345"); ok {
		t.Errorf("expected short password to fail, got ok (msg=%q)", msg)
	}
	if ok, _ := ValidatePassword("password123"); !ok {
		t.Error("expected normal password to pass")
	}
	if ok, _ := ValidatePassword(strings.Repeat("a", 73)); ok {
		t.Error("expected over-length password to fail")
	}
	if ok, _ := ValidatePassword(strings.Repeat("a", 72)); !ok {
		t.Error("expected 72-char password to pass")
	}
}

func TestValidateImageContent(t *testing.T) {
	if ok, msg := ValidateImageContent(bytes.NewReader(pngHeader()), ".png"); !ok {
		t.Errorf("expected png content with .png ext to pass, got %q", msg)
	}

	// Content says png, extension claims jpg.
	if ok, _ := ValidateImageContent(bytes.NewReader(pngHeader()), ".jpg"); ok {
		t.Error("expected mismatched extension to fail")
	}

	if ok, _ := ValidateImageContent(strings.NewReader("#!/bin/sh\nrm -rf /\n"), ".png"); ok {
		t.Error("expected non-image content to fail")
	}
}

func TestValidateImageContentRewinds(t *testing.T) {
	reader := bytes.NewReader(pngHeader())
	if ok, msg := ValidateImageContent(reader, ".png"); !ok {
		t.Fatalf("validation failed: %q", msg)
	}
	if pos, _ := reader.Seek(0, 1); pos != 0 {
		t.Fatalf("reader not rewound, position %d", pos)
	}
}
