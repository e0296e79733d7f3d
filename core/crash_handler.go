package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// CrashCleanup is invoked before the process exits on a panic in a managed
// goroutine. main wires this to terminal restoration so a crash never leaves
// the terminal in raw mode
var CrashCleanup func()

// HandleCrash is the unified panic handler that restores the terminal and
// prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if CrashCleanup != nil {
		CrashCleanup()
	}

	fmt.Fprintf(os.Stderr, "\r\ncrash detected: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
