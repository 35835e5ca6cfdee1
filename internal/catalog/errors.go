package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion indicates the catalog's version is not valid
	// semver or has a major version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported catalog version")

	// ErrUnknownStudent indicates a lookup for a student the catalog does not declare.
	ErrUnknownStudent = errors.New("unknown student")
)

// ValidationError indicates the catalog document does not conform to the
// catalog schema.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid catalog: %v", e.Err)
	}
	return fmt.Sprintf("invalid catalog %s: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
