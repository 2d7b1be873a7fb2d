package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(10)

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Fatalf("expected password to verify")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashLongPassword(t *testing.T) {
	h := NewHasher(10)

	long := strings.Repeat("a", 100)
	hash, err := h.Hash(long)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !h.Verify(long, hash) {
		t.Fatalf("expected long password to verify")
	}
}
