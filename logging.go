package main

import (
	"github.com/retroenv/retrogolib/log"
)

/// newLogger creates the host logger with the level picked by the flags.
///
func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
