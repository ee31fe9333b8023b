package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit codes, one per error kind.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitParse       = 2
	ExitResolution  = 3
	ExitValidation  = 4
	validationTitle = "validation failed"
)

// ParseError reports a malformed or incomplete configuration document.
type ParseError struct {
	Source string
	Line   int
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
	}
	b.WriteString(": ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResolutionError reports a value that could not be taken from the descriptor.
type ResolutionError struct {
	Field  string
	Key    string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s from %s: %s", e.Field, e.Key, e.Reason)
}

// ValidationError carries every invariant violated by a configuration.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return validationTitle + ": " + e.Reason()
}

// Reason joins all violations into a single human-readable sentence.
func (e *ValidationError) Reason() string {
	return strings.Join(e.Reasons, "; ")
}

// ExitCode maps an error returned by the pipeline to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ExitParse
	}
	var resolutionErr *ResolutionError
	if errors.As(err, &resolutionErr) {
		return ExitResolution
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitValidation
	}
	return ExitFailure
}
