package service

import "github.com/kestrelvane/adaptive-image-stego/internal/cipher"

type cryptographyService struct{}

// NewCryptographyService constructs the default CryptographyService.
func NewCryptographyService() CryptographyService {
	return &cryptographyService{}
}

func (s *cryptographyService) Encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	key := cipher.DeriveKey(passphrase)
	return cipher.Encrypt(plaintext, key)
}

func (s *cryptographyService) Decrypt(ciphertext []byte, passphrase string) ([]byte, error) {
	key := cipher.DeriveKey(passphrase)
	return cipher.Decrypt(ciphertext, key)
}
