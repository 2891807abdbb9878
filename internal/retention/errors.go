package retention

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound matches a ConfigurationError raised for a missing
// source or destination directory.
var ErrDirectoryNotFound = errors.New("directory not found")

type Kind int

const (
	KindDirectoryNotFound Kind = iota + 1
)

// ConfigurationError aborts a run before anything on disk is touched.
type ConfigurationError struct {
	Kind  Kind
	Field string // "source" or "destination"
	Path  string
	Err   error // underlying stat error, nil when the path is not a directory
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s directory %s: %s", e.Field, e.Path, ErrDirectoryNotFound)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrDirectoryNotFound && e.Kind == KindDirectoryNotFound
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
