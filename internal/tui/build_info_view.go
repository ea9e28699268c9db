// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "hi-time"},
		{"Version", info.Version},
		{"Date", info.Date},
		{"Commit", info.Commit},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", row[0]+":", valueOrNA(row[1]))
	}
	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), helpLine(keys.esc))
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
