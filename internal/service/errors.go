package service

import (
	"fmt"
	"sort"
	"strings"

	"school-service/internal/repository"
)

// ErrNotFound is returned when the target row is absent or owned by a
// different tenant. The two cases are deliberately indistinguishable so
// a response never leaks that an id exists under another school.
var ErrNotFound = repository.ErrNotFound

// ValidationError carries a field-to-message map describing every input
// field that failed validation, including referential checks such as a
// course pointing at a teacher from another tenant.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// DuplicateEnrollmentError reports a (student, course) pair the tenant
// has already enrolled. It is attributed to the student_id field so the
// caller can attach the message to the student selector.
type DuplicateEnrollmentError struct {
	StudentID uint
	CourseID  uint
}

func (e *DuplicateEnrollmentError) Error() string {
	return fmt.Sprintf("student %d is already enrolled in course %d", e.StudentID, e.CourseID)
}

// Field names the input field the duplicate is attributed to.
func (e *DuplicateEnrollmentError) Field() string { return "student_id" }

// Message is the user-facing text for the offending field.
func (e *DuplicateEnrollmentError) Message() string {
	return "This student is already enrolled in the selected course."
}

// DependentRowsError is returned by deletes running under the restrict
// policy when dependent rows still reference the target.
type DependentRowsError struct {
	Resource   string
	Dependents string
	Count      int64
}

func (e *DependentRowsError) Error() string {
	return fmt.Sprintf("%s still has %d %s", e.Resource, e.Count, e.Dependents)
}

// ErrInvalidCredentials is returned by Login on a wrong email or password.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")
