package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testHasher() PasswordHasher {
	// small parameters keep the suite fast
	return &argonHasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32, saltLen: 16}
}

func TestHash_FormatAndRandomness(t *testing.T) {
	h := testHasher()

	h1, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(h1, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Fatalf("unexpected hash format: %s", h1)
	}
	if h1 == h2 {
		t.Fatalf("expected different salts to produce different hashes")
	}
}

func TestVerify(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("s3cret", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Verify("wrong", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestVerify_UsesStoredParameters(t *testing.T) {
	encoded, err := testHasher().Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher().Verify("s3cret", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify with other tuning = %v, %v; want true, nil", ok, err)
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	h := testHasher()

	for _, encoded := range []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		if _, err := h.Verify("pw", encoded); !errors.Is(err, ErrInvalidHash) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidHash", encoded, err)
		}
	}
}

func TestParseHexKey(t *testing.T) {
	good := strings.Repeat("ab", 32)
	key, err := ParseHexKey(good)
	if err != nil {
		t.Fatalf("ParseHexKey error: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}

	for _, bad := range []string{"", "abcd", strings.Repeat("zz", 32), strings.Repeat("ab", 31)} {
		if _, err := ParseHexKey(bad); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ParseHexKey(%q) error = %v, want ErrInvalidKey", bad, err)
		}
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	s, err := NewSealer(key)
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	plain := []byte(`{"table":"shipping","rows":[]}`)
	blob, err := s.Seal(plain)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if len(blob) <= 12 || bytes.Contains(blob, plain) {
		t.Fatalf("blob does not look encrypted")
	}

	got, err := s.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("Open = %q, want %q", got, plain)
	}
}

func TestSealer_NonceRandomness(t *testing.T) {
	s, err := NewSealer(bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	b1, _ := s.Seal([]byte("same"))
	b2, _ := s.Seal([]byte("same"))
	if bytes.Equal(b1[:12], b2[:12]) {
		t.Fatalf("expected distinct nonces")
	}
}

func TestSealer_WrongKeyAndTampering(t *testing.T) {
	s1, _ := NewSealer(bytes.Repeat([]byte{0x01}, 32))
	s2, _ := NewSealer(bytes.Repeat([]byte{0x02}, 32))

	blob, err := s1.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := s2.Open(blob); !errors.Is(err, ErrDecryption) {
		t.Fatalf("Open with wrong key error = %v, want ErrDecryption", err)
	}

	blob[len(blob)-1] ^= 0xFF
	if _, err := s1.Open(blob); !errors.Is(err, ErrDecryption) {
		t.Fatalf("Open of tampered blob error = %v, want ErrDecryption", err)
	}

	if _, err := s1.Open([]byte("short")); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("Open of short blob error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestNewSealer_InvalidKey(t *testing.T) {
	if _, err := NewSealer([]byte("short")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("NewSealer error = %v, want ErrInvalidKey", err)
	}
}
