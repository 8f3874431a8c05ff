package utils

import "fmt"

// ValidationError carries the per-field constraint failures of a
// rejected payload. Maps to 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + FormatValidationErrors(e.Fields)
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, constraint string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: constraint}}
}

// NotFoundError reports an absent document. Maps to 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// StorageError wraps a failed store operation. Maps to 500; the wrapped
// driver error is logged, never returned to the client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
