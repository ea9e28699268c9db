package crypto

import "errors"

var (
	ErrInvalidKey         = errors.New("encryption key must be 32 bytes (64 hex characters)")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryption         = errors.New("decryption failed")
	ErrInvalidHash        = errors.New("invalid password hash")
)
