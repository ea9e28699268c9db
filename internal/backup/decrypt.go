package backup

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
)

// DecryptFile opens an encrypted snapshot and writes the plain JSON next to
// it (the path without ".enc"). It returns the written path.
func DecryptFile(sealer crypto.Sealer, path string) (string, error) {
	if !strings.HasSuffix(path, encSuffix) {
		return "", fmt.Errorf("%w: %s", ErrNotEncrypted, path)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	plain, err := sealer.Open(blob)
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", path, err)
	}

	out := strings.TrimSuffix(path, encSuffix)
	if err := os.WriteFile(out, plain, 0o600); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return out, nil
}
