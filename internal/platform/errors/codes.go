// Package errors provides structured, localizable errors for beanstock.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeMissingInput   Code = "MISSING_INPUT"
	CodeInvalidNumber  Code = "INVALID_NUMBER"
	CodeUnknownColumn  Code = "UNKNOWN_COLUMN"
	CodeUnknownField   Code = "UNKNOWN_FIELD"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	CodeUnknownMode    Code = "UNKNOWN_MODE"

	// Shell state errors
	CodeWrongMode   Code = "WRONG_MODE"
	CodeNoSelection Code = "NO_SELECTION"
	CodeRowNotShown Code = "ROW_NOT_SHOWN"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// Fatal reports whether errors with this code must stop the shell.
func (c Code) Fatal() bool {
	return c == CodeStorageFailure
}
