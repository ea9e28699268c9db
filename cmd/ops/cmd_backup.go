package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/backup"
	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/workers"
	"github.com/spf13/cobra"
)

var (
	backupMode  string
	backupDir   string
	backupEvery time.Duration
	decryptKey  string
)

var errNoEncryptionKey = errors.New("no encryption key: pass --key or set BACKUP_ENCRYPTION_KEY")

// backupCmd exports every table of the server database.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export the server database to JSON files",
	Long: `Export every table of the server database into a new run folder.

A full backup runs on the first day of the month and on Sundays, an
incremental one otherwise. Files are encrypted when an encryption key is
configured. With --every the command keeps running and backs up on that
interval until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

// backupDecryptCmd restores the plain JSON of an encrypted table file.
var backupDecryptCmd = &cobra.Command{
	Use:   "decrypt <file.json.enc>",
	Short: "Decrypt one backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupDecrypt,
}

func init() {
	backupCmd.Flags().StringVar(&backupMode, "mode", "", "Force \"full\" or \"incremental\" (default: by calendar)")
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "Override the backup directory")
	backupCmd.Flags().DurationVar(&backupEvery, "every", 0, "Repeat the backup on this interval")

	backupDecryptCmd.Flags().StringVar(&decryptKey, "key", "", "Hex AES-256 key (default: $BACKUP_ENCRYPTION_KEY)")

	backupCmd.AddCommand(backupDecryptCmd)
}

func runBackup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetBackupConfig(configPath)
	if err != nil {
		return err
	}
	if backupDir != "" {
		cfg.Backup.Dir = backupDir
	}

	mode, err := backup.ParseMode(backupMode)
	if err != nil {
		return err
	}

	log := logger.NewLogger("hi-time-backup")
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sealer, err := sealerFromKey(cfg.Backup.EncryptionKey)
	if err != nil {
		return err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer storages.Close()

	job := backup.NewJob(storages.TableExporter, backup.Options{
		Dir:         cfg.Backup.Dir,
		Mode:        mode,
		Lookbacks:   cfg.Backup.Lookbacks,
		Retries:     cfg.Backup.Retries,
		BaseBackoff: cfg.Backup.BaseBackoff,
		Sealer:      sealer,
		Classifier:  storages.DB(),
	}, log)

	runOnce := func(ctx context.Context) error {
		result, err := job.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s backup written to %s (%d tables)\n",
			result.Manifest.Mode, result.Dir, len(result.Manifest.Tables))
		return nil
	}

	if backupEvery <= 0 {
		return runOnce(ctx)
	}

	err = workers.New(workers.NewPeriodic("backup", backupEvery, runOnce, log)).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runBackupDecrypt needs only the key, so it works on a machine without
// database access.
func runBackupDecrypt(cmd *cobra.Command, args []string) error {
	key := decryptKey
	if key == "" {
		key = os.Getenv("BACKUP_ENCRYPTION_KEY")
	}
	if key == "" {
		return errNoEncryptionKey
	}

	sealer, err := sealerFromKey(key)
	if err != nil {
		return err
	}

	out, err := backup.DecryptFile(sealer, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "decrypted to %s\n", out)
	return nil
}

// sealerFromKey returns nil when no key is configured.
func sealerFromKey(hexKey string) (crypto.Sealer, error) {
	if hexKey == "" {
		return nil, nil
	}

	key, err := crypto.ParseHexKey(hexKey)
	if err != nil {
		return nil, err
	}
	return crypto.NewSealer(key)
}
