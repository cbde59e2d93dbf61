package config

import "fmt"

// Error reports an unknown enum tag or an invalid rules value.
type Error struct {
	Field  string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *Error {
	return &Error{Field: field, Value: fmt.Sprint(value), Reason: reason}
}
