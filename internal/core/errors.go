package core

import "fmt"

// ValidationError is returned when a record carries a value the registry refuses.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	if e.Field == "name" {
		return "invalid process: name must not be empty"
	}
	if e.Value > MaxTime {
		return fmt.Sprintf("invalid process: %s must not exceed %d, got %d", e.Field, MaxTime, e.Value)
	}
	return fmt.Sprintf("invalid process: %s must be non-negative, got %d", e.Field, e.Value)
}

// IndexError is returned when a positional index is outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// NotFoundError is returned when no record carries the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("process %q not found", e.ID)
}
