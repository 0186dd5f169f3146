package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "tide-fighter.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// rename moves the full log aside; replaced in tests
var rename = os.Rename

// setupLogging opens the debug log file, rotating it past maxLogSize
// Without debug all output is discarded and nil is returned; the terminal is never written to
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("tide-fighter-%s.log", time.Now().Format("20060102-150405")))
		rotateErr = rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)

	// A failed rotation keeps appending to the old file; record why
	if rotateErr != nil {
		log.Printf("log rotation failed: %v", rotateErr)
	}
	return f
}

// newLogger returns a structured logger writing to the log file, or a no-op logger when there is none
func newLogger(f *os.File) zerolog.Logger {
	if f == nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "tide-fighter").
		Logger()
}
