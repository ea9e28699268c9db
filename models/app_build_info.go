// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD and shown by the
// /api/version endpoint, the TUI footer and `ops --version`.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

// String renders the build info as a single human-readable line.
func (a AppBuildInfo) String() string {
	return "version " + a.Version + " (" + a.Commit + ", built " + a.Date + ")"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
