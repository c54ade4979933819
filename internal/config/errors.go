package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for settings loading and validation.
var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .toml, .yaml, and .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrWatcherClosed is returned when operations are attempted on a
	// closed watcher.
	ErrWatcherClosed = errors.New("config: watcher is closed")
)

// ParseError wraps a syntax error with the offending path.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
