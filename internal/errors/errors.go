package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotInitialized = errors.New("not initialized")
	ErrInvalidInput   = errors.New("invalid input")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "palette", "catalog", "color"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError indicates a resource already exists.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotInitializedError indicates the swatch data directory isn't set up.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("swatch not initialized in %s (run 'swatch init')", e.Path)
	}
	return "swatch not initialized (run 'swatch init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// Helper constructors for common cases

func PaletteNotFound(ref string) error {
	return &NotFoundError{Resource: "palette", ID: ref}
}

func CatalogNotFound(name string) error {
	return &NotFoundError{Resource: "catalog", ID: name}
}

func ColorNotFound(index int, palette string) error {
	return &NotFoundError{Resource: "color", ID: fmt.Sprintf("#%d (in palette %s)", index, palette)}
}

func PaletteAlreadyExists(name, catalog string) error {
	return &AlreadyExistsError{Resource: "palette", ID: fmt.Sprintf("%s (in catalog %s)", name, catalog)}
}

func CatalogAlreadyExists(name string) error {
	return &AlreadyExistsError{Resource: "catalog", ID: name}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func AmbiguousPalette(ref string, candidates []string) error {
	return &ValidationError{
		Message: fmt.Sprintf("palette %q is ambiguous, matches: %v", ref, candidates),
	}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotInitialized checks if an error is a not-initialized error.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
