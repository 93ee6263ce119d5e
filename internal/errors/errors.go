// Package errors provides sentinel errors and custom error types for the
// commitsync application. Use errors.Is() and errors.As() to check for
// specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrTargetMissing indicates that a generated config file does not exist
	ErrTargetMissing = errors.New("generated config missing")

	// ErrTargetOutOfSync indicates that a generated config file no longer
	// matches its source of truth
	ErrTargetOutOfSync = errors.New("generated config out of sync")
)

// TargetMissingError represents a generated config file that does not exist
type TargetMissingError struct {
	File    string
	Command string
}

func (e *TargetMissingError) Error() string {
	return fmt.Sprintf("%s does not exist. Run: %s", e.File, e.Command)
}

// Is returns true if the target error is ErrTargetMissing
func (e *TargetMissingError) Is(target error) bool {
	return target == ErrTargetMissing
}

// NewTargetMissingError creates a new TargetMissingError
func NewTargetMissingError(file, command string) *TargetMissingError {
	return &TargetMissingError{File: file, Command: command}
}

// TargetOutOfSyncError represents a generated config file whose content has
// drifted from the rendered output
type TargetOutOfSyncError struct {
	File    string
	Command string
	Diff    string
}

func (e *TargetOutOfSyncError) Error() string {
	return fmt.Sprintf("%s out of sync. Run: %s", e.File, e.Command)
}

// Is returns true if the target error is ErrTargetOutOfSync
func (e *TargetOutOfSyncError) Is(target error) bool {
	return target == ErrTargetOutOfSync
}

// NewTargetOutOfSyncError creates a new TargetOutOfSyncError
func NewTargetOutOfSyncError(file, command, diff string) *TargetOutOfSyncError {
	return &TargetOutOfSyncError{File: file, Command: command, Diff: diff}
}
