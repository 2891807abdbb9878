package config

import "fmt"

// Error reports an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

func newError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
