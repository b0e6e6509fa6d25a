package catalog

import (
	"errors"
	"fmt"
)

// ErrLoad is matched by every catalog load failure via errors.Is.
var ErrLoad = errors.New("catalog load failed")

// ErrNotArray is wrapped when the catalog document is not a JSON array.
var ErrNotArray = errors.New("catalog document must be a JSON array")

// LoadError describes why a catalog could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports ErrLoad so callers need not know the concrete type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
