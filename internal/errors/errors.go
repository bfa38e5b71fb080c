// Package errors holds the exit path shared by every haven command: record
// the failure in the log file for later diagnosis, print a one-line message,
// and terminate nonzero.
package errors

import (
	"fmt"
	"os"

	"github.com/haven-app/haven/internal/logger"
)

// Fatal reports err to the user and the log file, then exits with code 1.
// A nil err is a no-op, so callers can pass through a command result
// unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
