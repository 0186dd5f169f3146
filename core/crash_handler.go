package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Finalizer restores the terminal; satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var crashTerminal Finalizer

// RegisterCrashTerminal sets the terminal restored by HandleCrash
func RegisterCrashTerminal(t Finalizer) {
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing to stderr
	if crashTerminal != nil {
		crashTerminal.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
