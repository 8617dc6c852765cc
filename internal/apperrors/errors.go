package apperrors

import "fmt"

// Kind is the machine-readable error category carried on every Error.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindAuth        Kind = "auth"
	KindConflict    Kind = "conflict"
	KindPersistence Kind = "persistence"
)

// FieldError ties a validation failure to the dotted path of the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type crossing service boundaries. Validation
// failures carry field-level detail; everything else is kind + message.
type Error struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation builds a validation error from field-level failures.
func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Persistence wraps a store failure. The driver error is kept for logs but
// never serialized to clients.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, cause: cause}
}
