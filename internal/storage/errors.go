package storage

import "fmt"

// NotInRepoError indicates the working directory is not inside a git repository.
type NotInRepoError struct{}

func (e NotInRepoError) Error() string {
	return "not in a git repository"
}

// parseError represents a markdown parsing error.
type parseError struct {
	msg string
}

func (e *parseError) Error() string {
	return e.msg
}

// FieldError indicates a parsed task field holds an unacceptable value.
type FieldError struct {
	Field string
	Value string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
