// Package errors provides structured error handling for the Weft framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a component configuration error.
	KindConfig
	// KindParsing indicates a binding or markup parsing failure.
	KindParsing
	// KindDispatch indicates an event dispatch failure.
	KindDispatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the Weft framework.
type WeftError struct {
	// Op is the operation that failed (e.g., "router.Setup").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "router.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ConfigError represents a component configuration mistake, such as a
// required ref that no descendant element provides. Configuration errors
// are programmer errors: they are raised as panics during component setup
// and are never caught by the framework itself.
type ConfigError struct {
	// Tag is the tag name of the offending component host.
	Tag string
	// Ref is the missing reference slot name, if applicable.
	Ref string
	// Detail describes the misconfiguration when Ref does not apply.
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("component <%s> is missing required ref %q", e.Tag, e.Ref)
	}
	return fmt.Sprintf("component <%s>: %s", e.Tag, e.Detail)
}

// ErrorHandler receives errors reported by the Weft framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
