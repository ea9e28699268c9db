package utils

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxhash digest of the JSON encoding of v.
//
// Two values with equal JSON encodings have equal fingerprints, which lets
// the sync engine drop a mutation that does not change anything. Map keys are
// sorted by encoding/json, so maps fingerprint deterministically.
func Fingerprint(v any) (uint64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("error fingerprinting value: %w", err)
	}
	return FingerprintBytes(data), nil
}

// FingerprintBytes returns the xxhash digest of raw bytes.
func FingerprintBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
