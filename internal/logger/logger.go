/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	// Default logs to stderr. Set to io.Discard for silent mode (MCP).
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger zerolog.Logger
)

func init() {
	configure()
}

func configure() {
	console := zerolog.ConsoleWriter{
		Out:          output,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	logger = zerolog.New(console).Level(level)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	configure()
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	level = zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	configure()
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Debug logs a debug message. Hidden unless verbose output is enabled.
func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}
