// Package errors provides the error taxonomy for the presidio-configs CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	// Keys are rendered in sorted order.
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewRegistryNotFoundError creates an error for a missing registry file.
func NewRegistryNotFoundError(path string) error {
	return &DetailError{
		Type:     "registry not found",
		Message:  "registry file does not exist",
		Location: path,
		Hint:     "Pass --registry or set PRESIDIO_REGISTRY to the languages.yaml path.",
		Cause:    ErrRegistryNotFound,
	}
}

// NewRegistryParseError creates an error for a registry that cannot be decoded.
func NewRegistryParseError(path string, cause error) error {
	return &DetailError{
		Type:     "registry parse error",
		Message:  cause.Error(),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrRegistryParse, cause),
	}
}

// NewUnknownLanguageError reports unknown codes along with every available one.
// available is expected to be sorted.
func NewUnknownLanguageError(unknown, available []string) error {
	return &DetailError{
		Type:    "unknown language",
		Message: "Unknown language(s): " + strings.Join(unknown, ", "),
		Context: map[string]string{
			"Available": strings.Join(available, ", "),
		},
		Cause: ErrUnknownLanguage,
	}
}

// NewEmptyLanguageListError creates an error for an empty --languages value.
func NewEmptyLanguageListError() error {
	return &DetailError{
		Type:    "no languages specified",
		Message: "--languages resolved to an empty list",
		Hint:    "Pass a comma-separated list, e.g. --languages=en,de",
		Cause:   ErrEmptyLanguageList,
	}
}

// NewMissingModelError reports registry entries that have no model.
func NewMissingModelError(codes []string) error {
	return &DetailError{
		Type:    "registry parse error",
		Message: "No model for language(s): " + strings.Join(codes, ", "),
		Hint:    "Every entry in languages.yaml needs a model key.",
		Cause:   ErrRegistryParse,
	}
}

// WrapWrite wraps an I/O error with ErrWrite.
func WrapWrite(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrWrite, err)
}
