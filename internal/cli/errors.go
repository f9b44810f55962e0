package cli

import "errors"

var (
	// ErrNoManager is returned when no supported package manager binary
	// is found on PATH.
	ErrNoManager = errors.New("no supported package manager found (looked for apt, dnf, pacman, zypper)")

	// ErrAborted is returned when the user declines the install prompt.
	ErrAborted = errors.New("installation aborted")
)
