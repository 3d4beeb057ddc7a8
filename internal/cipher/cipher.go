// Package cipher is the external collaborator that encrypts a payload
// before it reaches the steganography engine: AES-256 in CTR mode, the
// same stream-cipher mode as the original reference's AESCTR.py. The
// core engine never imports this package; only the service layer wires
// ciphertext bytes into the Bit Packer.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
)

// NonceSize is the length, in bytes, of the random CTR nonce prepended
// to every ciphertext (matches the 8-byte nonce in AESCTR.py, padded
// with an 8-byte zero counter to form the cipher.Block's 16-byte IV).
const NonceSize = 8

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// ErrShortCiphertext is returned when a ciphertext is too short to
// contain a nonce.
var ErrShortCiphertext = errors.New("cipher: ciphertext shorter than nonce")

// DeriveKey derives a 32-byte AES-256 key from a passphrase, following
// the SHA-256-of-passphrase idiom used by zanicar-stegano's CLI wrapper.
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// Encrypt encrypts plaintext with key under AES-256-CTR. The returned
// ciphertext is nonce||data so Decrypt only needs the key.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, nonce)

	stream := stdcipher.NewCTR(block, iv)
	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	out := make([]byte, 0, NonceSize+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// Decrypt reverses Encrypt: it splits the leading nonce from data and
// decrypts the remainder under AES-256-CTR.
func Decrypt(data, key []byte) ([]byte, error) {
	if len(data) < NonceSize {
		return nil, ErrShortCiphertext
	}
	nonce, ciphertext := data[:NonceSize], data[NonceSize:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, nonce)

	stream := stdcipher.NewCTR(block, iv)
	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}
