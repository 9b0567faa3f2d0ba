package config

import "errors"

// Configuration errors.
var (
	// ErrNotFound indicates no configuration file exists at the path.
	ErrNotFound = errors.New("configuration file not found")
)

// ParseError wraps a configuration parse failure with its file path.
type ParseError struct {
	Path string // File that failed to parse
	Err  error  // Underlying decode error
}

func (e *ParseError) Error() string {
	return "parse " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
