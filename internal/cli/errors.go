// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package cli provides shared configuration and utilities for the tsbind CLI.
package cli

import (
	"errors"
	"fmt"
	"io"
)

const (
	ExitSuccess   = 0
	ExitGeneral   = 1
	ExitConfig    = 2
	ExitModelLoad = 3
	ExitStale     = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode reports the code err maps to: the code of the first ExitError in
// its chain, ExitGeneral otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// ReportError prints err to w and returns its exit code.
func ReportError(w io.Writer, err error) int {
	_, _ = fmt.Fprintln(w, "Error:", err)
	return ExitCode(err)
}

func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

func ModelLoadError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitModelLoad, Message: msg, Err: err}
}

// StaleError reports generated files that differ from what is on disk.
func StaleError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitStale, Message: msg, Err: err}
}

func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}
