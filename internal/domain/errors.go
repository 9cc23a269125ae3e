package domain

import (
	"errors"
	"fmt"
)

// Domain errors classify why a games file could not be loaded.
// Check them with errors.Is.
var (
	// ErrFileRead is returned when the games file is missing or unreadable.
	ErrFileRead = errors.New("nfgame: file read error")

	// ErrParse is returned when the games file does not match the expected schema.
	ErrParse = errors.New("nfgame: parse error")
)

// LoadError wraps a loader failure with the file it concerns.
type LoadError struct {
	Path string
	Kind error // ErrFileRead or ErrParse
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the error's kind, so errors.Is(err, ErrParse) works.
func (e *LoadError) Is(target error) bool {
	return e != nil && e.Kind == target
}

// NewReadError builds a LoadError of kind ErrFileRead.
func NewReadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Kind: ErrFileRead, Err: err}
}

// NewParseError builds a LoadError of kind ErrParse.
func NewParseError(path string, err error) *LoadError {
	return &LoadError{Path: path, Kind: ErrParse, Err: err}
}
