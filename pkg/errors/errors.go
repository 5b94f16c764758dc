package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError reports a name that matched nothing in a catalog, with the
// closest known name when one is near enough.
type LookupError struct {
	Kind       string
	Name       string
	Suggestion string
}

// NewLookupError constructs a LookupError.
func NewLookupError(kind, name, suggestion string) error {
	return &LookupError{Kind: kind, Name: name, Suggestion: suggestion}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// BuildError indicates a document section could not be turned into a
// layout.
type BuildError struct {
	Section string
	Err     error
}

// NewBuildError constructs a BuildError for the given section.
func NewBuildError(section string, err error) error {
	return &BuildError{Section: section, Err: err}
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	if e.Section != "" {
		return fmt.Sprintf("build error [%s]: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("build error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *BuildError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
