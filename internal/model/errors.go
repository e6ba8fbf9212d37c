package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors surfaced at the CLI boundary
type ErrorKind string

const (
	// KindValidation is a malformed URL, path or argument, rejected before any side effect
	KindValidation ErrorKind = "validation"

	// KindNotFound is a missing file the caller needed
	KindNotFound ErrorKind = "not_found"

	// KindExternalTool is an extractor failure that survived every retry
	KindExternalTool ErrorKind = "external_tool"

	// KindFilesystem is a missing destination or failed move
	KindFilesystem ErrorKind = "filesystem"
)

// Error carries a kind and the operation that failed
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps the error kind to a process exit status
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindExternalTool:
		return 4
	case KindFilesystem:
		return 5
	default:
		return 1
	}
}

// NewError wraps err with a kind and operation name
func NewError(kind ErrorKind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validationf builds a KindValidation error from a format string
func Validationf(op, format string, args ...any) error {
	return NewError(KindValidation, op, fmt.Errorf(format, args...))
}

// IsKind reports whether any error in err's chain is a *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
