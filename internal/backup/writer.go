package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
)

const (
	manifestFile = "manifest.json"
	encSuffix    = ".enc"

	// timestampLayout is a UTC timestamp safe for file names on every OS.
	timestampLayout = "2006-01-02T15-04-05Z"
)

// writer stores the files of one run under dir. Table snapshots are sealed
// when sealer is set; the manifest is always plain.
type writer struct {
	dir    string
	sealer crypto.Sealer
}

func newWriter(dir string, sealer crypto.Sealer) (*writer, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return &writer{dir: dir, sealer: sealer}, nil
}

// writeTable stores v as {table}.json, or {table}.json.enc when sealing,
// and returns the file name.
func (w *writer) writeTable(table string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %w", ErrWriteFailed, table, err)
	}

	name := table + ".json"
	if w.sealer != nil {
		if data, err = w.sealer.Seal(data); err != nil {
			return "", fmt.Errorf("%w: seal %s: %w", ErrWriteFailed, table, err)
		}
		name += encSuffix
	}

	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o600); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return name, nil
}

func (w *writer) writeManifest(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode manifest: %w", ErrWriteFailed, err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, manifestFile), data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
