package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for registry construction.
var (
	// ErrDuplicateExample indicates an example name was registered twice.
	ErrDuplicateExample = errors.New("duplicate example name")
	// ErrDuplicateCategory indicates a category name was registered twice.
	ErrDuplicateCategory = errors.New("duplicate category name")
	// ErrEmptyName indicates a definition with no name was registered.
	ErrEmptyName = errors.New("definition name is empty")
)

// UnknownExampleError records a lookup for an example name that does not
// exist, carrying the set of valid names for diagnostics.
type UnknownExampleError struct {
	Name  string
	Known []string
}

func (e *UnknownExampleError) Error() string {
	return fmt.Sprintf("unknown example %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// UnknownCategoryError records a lookup for a category name that does not
// exist, carrying the set of valid names for diagnostics.
type UnknownCategoryError struct {
	Name  string
	Known []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}
