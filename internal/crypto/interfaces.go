// Package crypto holds the two cryptographic primitives of hi-time: argon2id
// password hashing for the server's user accounts and AES-256-GCM sealing of
// backup files.
//
// Neither primitive knows anything about the network, the database or users.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing encoded
// hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash derives an argon2id hash with a fresh random salt. The result
	// embeds the parameters and the salt:
	//
	//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. It returns an error
	// only when encoded is not a hash produced by Hash.
	Verify(password, encoded string) (bool, error)
}

// Sealer encrypts and decrypts opaque blobs with one symmetric key.
type Sealer interface {
	// Seal encrypts plain. The output is nonce ‖ ciphertext.
	Seal(plain []byte) ([]byte, error)

	// Open reverses Seal. It fails when the blob was sealed with another
	// key or was modified.
	Open(blob []byte) ([]byte, error)
}
