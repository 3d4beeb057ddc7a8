package cipher

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := DeriveKey("correct horse battery staple")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ciphertext, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(ciphertext[NonceSize:], plaintext) {
		t.Fatalf("ciphertext should not equal plaintext")
	}

	got, err := Decrypt(ciphertext, key)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestDeriveKeyLength(t *testing.T) {
	if got := len(DeriveKey("anything")); got != KeySize {
		t.Fatalf("key length: got %d want %d", got, KeySize)
	}
}

func TestDecryptShortCiphertext(t *testing.T) {
	key := DeriveKey("pw")
	if _, err := Decrypt([]byte{1, 2, 3}, key); err != ErrShortCiphertext {
		t.Fatalf("expected ErrShortCiphertext, got %v", err)
	}
}

func TestWrongKeyProducesGarbage(t *testing.T) {
	plaintext := []byte("secret payload")
	ciphertext, err := Encrypt(plaintext, DeriveKey("key-a"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	got, err := Decrypt(ciphertext, DeriveKey("key-b"))
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if bytes.Equal(got, plaintext) {
		t.Fatalf("decrypting with the wrong key should not recover the plaintext")
	}
}
