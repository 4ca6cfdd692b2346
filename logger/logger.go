// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured logger based on log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to the given writer with the
// provided level. An unrecognized level yields an error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", levelText, err)
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError terminates the process with the given code. It is meant to
// be deferred first in main, so cleanup deferred after it still runs.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
