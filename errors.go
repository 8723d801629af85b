package utils

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common failure conditions across the library.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnsupportedValue indicates a value's type or shape is not supported
	// by the operation (e.g. sizing an object that is not file-like).
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrNotFound indicates a requested key, path segment, or attribute does
	// not exist on the target.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange indicates a sequence index is outside the bounds of the
	// target sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrMalformedPath indicates a dot/bracket path expression could not be
	// parsed (e.g. a bracket accessor without a valid integer index).
	ErrMalformedPath = errors.New("malformed path expression")

	// ErrInvalidBounds indicates a numeric range was constructed with a
	// lower bound that is not strictly smaller than the upper bound.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a key, path, or attribute was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindUnsupported represents errors where a value's shape is not supported.
	KindUnsupported = "unsupported"

	// KindIO represents errors raised by the underlying I/O layer.
	KindIO = "io"

	// KindInternal represents internal library errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &utils.Error{
//		Op:   "pathutil.Get",
//		Kind: utils.KindNotFound,
//		Err:  utils.ErrNotFound,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "pathutil.Set", "fileutil.Size").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include the offending path segment, parameter values, or
	// other debugging information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("utils: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("utils: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("utils: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or on another Error's Op and Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for adding debugging information to errors.
//
// Example:
//
//	err = err.WithContext(map[string]any{
//		"path":    "a.b[2].c",
//		"segment": "[2]",
//	})
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// LogValue implements slog.LogValuer so that structured errors log as
// grouped attributes rather than a flat string.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.String("kind", e.Kind),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	for k, v := range e.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewUnsupportedError creates a new Error with KindUnsupported.
func NewUnsupportedError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnsupported,
		Err:  err,
	}
}

// NewIOError creates a new Error with KindIO.
func NewIOError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindIO,
		Err:  err,
	}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements to ensure
// cleanup errors are not silently ignored.
//
// The name parameter should describe the resource being closed (e.g., "file",
// "body", "stream"). If logger is nil, slog.Default() is used.
//
// Example usage:
//
//	defer utils.CloseWithLog(file, logger, "sample file")
//	defer utils.CloseWithLog(resp.Body, logger, "response body")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
