package hwpx

import "fmt"

// ValidationError represents invalid input detected before any I/O takes
// place: a bad package entry path, an unsupported output extension.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StructuralError represents a reference into document structure that does
// not exist: a table, row, column, or section index out of range.
type StructuralError struct {
	Kind    string
	Index   int
	Message string
}

func (e *StructuralError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("structural error: %s %d: %s", e.Kind, e.Index, e.Message)
	}
	return fmt.Sprintf("structural error: %s %d not found", e.Kind, e.Index)
}

// NewStructuralError creates a new structural error.
func NewStructuralError(kind string, index int, message string) error {
	return &StructuralError{Kind: kind, Index: index, Message: message}
}

// MissingDataError is returned by Fill under PolicyFail when a placeholder
// in the document has no value in the supplied map.
type MissingDataError struct {
	Name string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no value for placeholder: %s", e.Name)
}

// NewMissingDataError creates a new missing-data error.
func NewMissingDataError(name string) error {
	return &MissingDataError{Name: name}
}

// DocumentError represents a failure during a document-level operation
// (open, parse, save). The underlying cause, including platform I/O
// errors, is preserved for errors.Is/As.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{Operation: operation, Path: path, Cause: cause}
}
