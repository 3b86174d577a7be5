// Package errors defines the structured error type used across petal.
//
// Every failure surfaced to the user carries a Kind so commands can print
// an actionable message (for example "run 'petal init' first") instead of
// a bare wrapped cause. None of these conditions are retried: they signal
// missing setup, a corrupted file, or a programming error in a component
// definition, all of which need human correction.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a petal error.
type Kind string

const (
	KindNotInitialized     Kind = "not_initialized"
	KindConfigParse        Kind = "config_parse"
	KindDuplicateComponent Kind = "duplicate_component"
	KindComponentNotFound  Kind = "component_not_found"
	KindIO                 Kind = "io"
	KindNetwork            Kind = "network"
	KindInternal           Kind = "internal"
)

// Error is a structured error with enough context to print an actionable
// message: the failing operation, the offending path when one exists, and
// the wrapped cause.
type Error struct {
	Kind    Kind
	Op      string
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op+":")
	}
	if e.Path != "" {
		parts = append(parts, e.Path+":")
	}
	parts = append(parts, e.Message)
	msg := strings.Join(parts, " ")
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches errors by Kind so callers can test against the sentinel
// constructors without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithPath attaches the offending filesystem path.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// Sentinels for errors.Is checks. Constructors below attach context.
var (
	ErrNotInitialized     = &Error{Kind: KindNotInitialized, Message: "not a petal project"}
	ErrConfigParse        = &Error{Kind: KindConfigParse, Message: "invalid project configuration"}
	ErrDuplicateComponent = &Error{Kind: KindDuplicateComponent, Message: "component already registered"}
	ErrComponentNotFound  = &Error{Kind: KindComponentNotFound, Message: "component not found"}
)

// NewNotInitialized reports a missing project configuration. The message
// tells the user how to fix it rather than what file stat failed.
func NewNotInitialized(path string) *Error {
	return &Error{
		Kind:    KindNotInitialized,
		Op:      "config.Load",
		Path:    path,
		Message: "not a petal project (no configuration found), run 'petal init' first",
	}
}

// NewConfigParse reports a corrupted or hand-edited-incorrectly config file.
func NewConfigParse(path string, cause error) *Error {
	return &Error{
		Kind:    KindConfigParse,
		Op:      "config.Load",
		Path:    path,
		Message: "cannot parse project configuration",
		Cause:   cause,
	}
}

// NewDuplicateComponent reports a second registration under the same name,
// which is an authoring error in a component definition.
func NewDuplicateComponent(name string) *Error {
	return &Error{
		Kind:    KindDuplicateComponent,
		Op:      "registry.Register",
		Message: fmt.Sprintf("component %q is already registered", name),
	}
}

// NewComponentNotFound reports a registry or config lookup miss.
func NewComponentNotFound(name string) *Error {
	return &Error{
		Kind:    KindComponentNotFound,
		Message: fmt.Sprintf("component %q not found", name),
	}
}

// NewIO wraps a filesystem error with the offending path.
func NewIO(op, path string, cause error) *Error {
	return &Error{
		Kind:    KindIO,
		Op:      op,
		Path:    path,
		Message: "filesystem operation failed",
		Cause:   cause,
	}
}

// NewNetwork wraps a failed HTTP exchange with the URL that failed.
func NewNetwork(op, url string, cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Op:      op,
		Path:    url,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewInternal reports a bug in petal itself.
func NewInternal(op, message string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Op:      op,
		Message: message,
		Cause:   cause,
	}
}
