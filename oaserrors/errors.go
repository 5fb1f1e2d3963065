// Package oaserrors provides structured error types for oasblocks.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between a malformed set of
// declarations, a missing sub-document, and an operation used under the
// wrong dialect.
//
// # Error Categories
//
//   - DeclarationError: structural violations (no root, several roots, no dialect marker)
//   - NotFoundError: a requested named sub-document does not exist
//   - NotSupportedError: an operation is not legal for the node's dialect
//   - ConfigError: invalid arguments or options
//
// # Usage with errors.Is
//
//	doc, err := builder.BuildRootDocument(units)
//	if errors.Is(err, oaserrors.ErrDeclaration) {
//	    // zero or several roots were declared
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDeclaration indicates the declarations are structurally invalid.
	ErrDeclaration = errors.New("declaration error")

	// ErrNotFound indicates a named sub-document was not found.
	ErrNotFound = errors.New("not found")

	// ErrNotSupported indicates an operation is not supported by a dialect.
	ErrNotSupported = errors.New("not supported")

	// ErrConfig indicates an invalid argument or configuration.
	ErrConfig = errors.New("configuration error")
)

// DeclarationError represents a structural violation in the declared document
// fragments, such as a missing or duplicated root.
type DeclarationError struct {
	// Message describes the violation
	Message string
	// Units names the declaring units involved, if known
	Units []string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DeclarationError) Error() string {
	msg := "declaration error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Units) > 0 {
		msg += " (units: " + strings.Join(e.Units, ", ") + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DeclarationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DeclarationError) Is(target error) bool {
	return target == ErrDeclaration
}

// NotFoundError represents a lookup of a named sub-document that does not
// exist in the aggregated dataset.
type NotFoundError struct {
	// Kind is the kind of thing looked up (e.g., "api declaration")
	Kind string
	// Name is the requested name
	Name string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "document"
	}
	return fmt.Sprintf("not found: %s named %q", kind, e.Name)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotSupportedError represents an operation invoked against a node or build
// entry point whose dialect does not allow it. No state is mutated when it
// is returned.
type NotSupportedError struct {
	// Operation is the operation name (e.g., "Operation.ResponseMessage")
	Operation string
	// Dialect is the resolved dialect of the receiver
	Dialect string
	// Supported lists the dialects in which the operation is legal
	Supported []string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *NotSupportedError) Error() string {
	var sb strings.Builder
	sb.WriteString("not supported")
	if e.Operation != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Operation)
	}
	if e.Dialect != "" {
		sb.WriteString(" under dialect ")
		sb.WriteString(e.Dialect)
	}
	if len(e.Supported) > 0 {
		sb.WriteString(" (supported: ")
		sb.WriteString(strings.Join(e.Supported, ", "))
		sb.WriteString(")")
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// Is reports whether target matches this error type.
func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported
}

// ConfigError represents an invalid argument or configuration.
// This includes unknown HTTP methods, unknown grant types and invalid options.
type ConfigError struct {
	// Option is the name of the problematic argument or option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
