package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "password1" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "password1") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "password2") {
		t.Error("wrong password accepted")
	}
	if CompareHashAndPassword("not-a-hash", "password1") {
		t.Error("garbage hash accepted")
	}
}
