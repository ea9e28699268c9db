package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// gcmSealer is the private implementation of [Sealer] over AES-256-GCM.
type gcmSealer struct {
	gcm cipher.AEAD
}

// ParseHexKey decodes a 64-character hex string into a 256-bit key.
func ParseHexKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// NewSealer builds a [Sealer] for a 32-byte key.
func NewSealer(key []byte) (Sealer, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &gcmSealer{gcm: gcm}, nil
}

// Seal implements [Sealer]. A random 12-byte nonce is prepended to the
// ciphertext so that Open can locate it: blob = nonce ‖ ciphertext.
func (s *gcmSealer) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.gcm.Seal(nonce, nonce, plain, nil), nil
}

// Open implements [Sealer].
func (s *gcmSealer) Open(blob []byte) ([]byte, error) {
	nonceSize := s.gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An authentication failure almost always means the wrong key.
	plain, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plain, nil
}
