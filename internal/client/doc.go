// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the hi-time terminal client: sign in, the main loop,
// and a final flush of every sync engine before the process exits.
package client
