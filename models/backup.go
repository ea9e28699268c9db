package models

import "time"

// BackupMode selects how much history a backup run exports.
type BackupMode string

const (
	BackupFull        BackupMode = "full"
	BackupIncremental BackupMode = "incremental"
)

// BackupTable is one exported table snapshot as written to disk.
type BackupTable struct {
	Table      string           `json:"table"`
	Mode       BackupMode       `json:"mode"`
	Since      *time.Time       `json:"since,omitempty"`
	ExportedAt time.Time        `json:"exportedAt"`
	Count      int              `json:"count"`
	Rows       []map[string]any `json:"rows"`
}

// BackupManifest summarises one backup run.
type BackupManifest struct {
	Mode      BackupMode     `json:"mode"`
	StartedAt time.Time      `json:"startedAt"`
	Encrypted bool           `json:"encrypted"`
	Tables    map[string]int `json:"tables"`
	Files     []string       `json:"files"`
}
