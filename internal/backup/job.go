package backup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/sethvargo/go-retry"
)

// Options configure a backup [Job].
type Options struct {
	// Dir is the parent directory; each run creates {mode}-{timestamp}.
	Dir string

	// Mode forces full or incremental. Empty selects by calendar.
	Mode models.BackupMode

	// Lookbacks are the incremental windows per table.
	Lookbacks map[string]time.Duration

	// Retries is the number of retries after the first failed export.
	Retries int

	// BaseBackoff is the first retry delay; it doubles on every retry.
	BaseBackoff time.Duration

	// Sealer encrypts the table files. Nil writes plain JSON.
	Sealer crypto.Sealer

	// Classifier stops retrying errors that cannot succeed on a retry.
	// Nil retries every error.
	Classifier store.ErrorClassificator

	// Now defaults to time.Now.
	Now func() time.Time
}

// Result describes a finished run.
type Result struct {
	Dir      string
	Manifest models.BackupManifest
}

// Job exports every table of a [store.TableExporter] to disk.
type Job struct {
	exporter store.TableExporter
	opts     Options
	logger   *logger.Logger
}

func NewJob(exporter store.TableExporter, opts Options, logger *logger.Logger) *Job {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Job{exporter: exporter, opts: opts, logger: logger}
}

// Run performs one backup. Tables are exported sequentially and the run
// stops at the first table that cannot be exported or written; the
// manifest is only written when every table succeeded.
func (j *Job) Run(ctx context.Context) (Result, error) {
	now := j.opts.Now().UTC()

	mode := j.opts.Mode
	if mode == "" {
		mode = SelectMode(now)
	}

	dir := filepath.Join(j.opts.Dir, fmt.Sprintf("%s-%s", mode, now.Format(timestampLayout)))
	w, err := newWriter(dir, j.opts.Sealer)
	if err != nil {
		return Result{}, err
	}

	log := j.logger.With().Str("mode", string(mode)).Str("dir", dir).Logger()
	log.Info().Msg("backup started")

	manifest := models.BackupManifest{
		Mode:      mode,
		StartedAt: now,
		Encrypted: j.opts.Sealer != nil,
		Tables:    make(map[string]int),
		Files:     make([]string, 0),
	}

	for _, table := range j.exporter.Tables() {
		from := since(mode, now, j.opts.Lookbacks, table)

		rows, err := j.export(ctx, table, from)
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("backup aborted")
			return Result{Dir: dir, Manifest: manifest}, err
		}

		name, err := w.writeTable(table, models.BackupTable{
			Table:      table,
			Mode:       mode,
			Since:      from,
			ExportedAt: j.opts.Now().UTC(),
			Count:      len(rows),
			Rows:       rows,
		})
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("backup aborted")
			return Result{Dir: dir, Manifest: manifest}, err
		}

		manifest.Tables[table] = len(rows)
		manifest.Files = append(manifest.Files, name)
		log.Info().Str("table", table).Int("rows", len(rows)).Msg("table exported")
	}

	if err := w.writeManifest(manifest); err != nil {
		return Result{Dir: dir, Manifest: manifest}, err
	}

	log.Info().Int("tables", len(manifest.Tables)).Msg("backup finished")
	return Result{Dir: dir, Manifest: manifest}, nil
}

// export fetches one table, retrying with exponential backoff.
func (j *Job) export(ctx context.Context, table string, from *time.Time) ([]map[string]any, error) {
	base := j.opts.BaseBackoff
	if base <= 0 {
		base = time.Second
	}
	backoff := retry.WithMaxRetries(uint64(max(j.opts.Retries, 0)), retry.NewExponential(base))

	attempt := 0
	var rows []map[string]any
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		var err error
		rows, err = j.exporter.ExportTable(ctx, table, from)
		if err == nil {
			return nil
		}

		if j.opts.Classifier != nil && j.opts.Classifier.Classify(err) == store.NonRetryable {
			return err
		}

		j.logger.Warn().Err(err).Str("table", table).Int("attempt", attempt).Msg("table export failed, retrying")
		return retry.RetryableError(err)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrExportFailed, table, attempt, err)
	}

	return rows, nil
}
