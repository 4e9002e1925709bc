// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package logger contains a slog-based logger shared by all services.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to the given writer with the given
// minimal level. Level is parsed case-insensitively ("debug", "info",
// "warn", "error").
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(logHandler), nil
}

// ExitWithError exits the program with the given exit code. It is meant to
// be deferred first in main so that the deferred resource cleanup runs
// before the process terminates.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
