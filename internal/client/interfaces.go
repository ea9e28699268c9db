// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// UI is the part of the terminal UI the app drives.
type UI interface {
	// LoginFlow blocks until the user is signed in. It returns
	// tui.ErrUserQuit when the user leaves instead.
	LoginFlow(ctx context.Context) error

	// MainLoop runs the signed-in screens. logout reports whether the user
	// signed out rather than quit.
	MainLoop(ctx context.Context) (logout bool, err error)
}
