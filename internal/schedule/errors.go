package schedule

import (
	"errors"
	"fmt"

	"classboard/internal/models"
)

// ErrNotFound reports that no class exists with the requested id.
var ErrNotFound = errors.New("class not found")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// OverlapError reports that a write collides with a stored class on the same day.
// Conflict carries the stored class so callers can explain the rejection.
type OverlapError struct {
	Conflict models.ClassSession
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("class time overlaps with an existing class: %q", e.Conflict.Title)
}
