// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Startup
	OpConfigLoad  Op = "load configuration"
	OpStateOpen   Op = "open settings database"
	OpLogOpen     Op = "open log file"
	OpSamplesLoad Op = "load samples"
	OpSpeakerOpen Op = "open sound device"

	// Runtime
	OpVolumeSave Op = "save volume"
	OpConsoleRun Op = "run console"

	// Code generation
	OpGenerate Op = "generate sample code"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
