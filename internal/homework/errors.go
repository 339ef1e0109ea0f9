package homework

import (
	"fmt"
	"strings"
)

// ShapeError reports a payload part with an unexpected type.
type ShapeError struct {
	What string
	Got  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s type %T", e.What, e.Got)
}

// MissingFieldError reports required keys absent from a payload.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field(s): %s", strings.Join(e.Fields, ", "))
}

// UnknownVerdictError reports a status outside the verdict vocabulary.
type UnknownVerdictError struct {
	Status string
}

func (e *UnknownVerdictError) Error() string {
	return fmt.Sprintf("unknown homework status %q, known statuses: %s",
		e.Status, strings.Join(KnownStatuses(), ", "))
}
