package backup

import "errors"

var (
	// ErrExportFailed wraps the last error of a table whose retries ran out.
	ErrExportFailed = errors.New("table export failed")

	// ErrWriteFailed is returned when a snapshot file cannot be written.
	ErrWriteFailed = errors.New("writing backup file failed")

	// ErrUnknownMode is returned for a forced mode other than full or
	// incremental.
	ErrUnknownMode = errors.New("unknown backup mode")

	// ErrNotEncrypted is returned by DecryptFile for files without the
	// .enc suffix.
	ErrNotEncrypted = errors.New("file is not an encrypted backup")
)
