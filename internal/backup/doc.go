// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup snapshots the server tables to timestamped JSON files.
//
// A run picks full or incremental mode by calendar rule, exports every table
// through a [store.TableExporter] with retries, optionally seals each file
// with AES-256-GCM, and finishes with a manifest.json describing the run.
package backup
