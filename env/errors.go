package env

import "errors"

// Resolution errors.
var (
	// ErrDuplicateKey indicates two prefixed environment variables reduced
	// to the same key after prefix stripping. This is a configuration
	// error: the caller cannot know which value was intended.
	ErrDuplicateKey = errors.New("duplicate key after prefix strip")

	// ErrNoContext indicates an operation that requires a build context
	// was called without one.
	ErrNoContext = errors.New("build context required")
)

// ParseError wraps a secrets or manifest file parse failure with its path.
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
