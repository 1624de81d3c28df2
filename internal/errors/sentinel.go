package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrRegistryNotFound indicates the language registry file does not exist.
	ErrRegistryNotFound = errors.New("registry not found")

	// ErrRegistryParse indicates the registry file is not well-formed YAML
	// or does not decode into the registry layout.
	ErrRegistryParse = errors.New("registry parse error")

	// ErrUnknownLanguage indicates one or more requested codes are absent
	// from the registry.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrEmptyLanguageList indicates no usable language codes were given.
	ErrEmptyLanguageList = errors.New("no languages specified")

	// ErrWrite indicates an artifact could not be written to disk.
	ErrWrite = errors.New("write failed")
)
