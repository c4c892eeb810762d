package services

import "fmt"

// ErrorKind classifies a service failure so controllers can derive an
// HTTP status without inspecting message text.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindDuplicate
	KindBlockedInstitute
	KindNotFound
	KindUnauthorized
)

// FieldError is a single field-keyed validation message, surfaced to
// the client for inline rendering.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the service-layer error type. Validation failures carry
// the per-field messages; internal errors carry the wrapped cause,
// which is logged server-side and never sent to the client.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewValidationError(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func NewDuplicateError(email string) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("%s is already registered", email)}
}

func NewBlockedInstituteError() *Error {
	return &Error{
		Kind:    KindBlockedInstitute,
		Message: "Students from this institute/university have been officially barred from participating in NITRUTSAV'26",
	}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", Cause: cause}
}

func NewTeamCompositionError(leaderIsNitr bool) *Error {
	msg := "For Moot Court, all team members must have the same NITR status as the team leader. "
	if leaderIsNitr {
		msg += "All teammates must be from NIT Rourkela."
	} else {
		msg += "No teammates can be from NIT Rourkela."
	}
	return &Error{Kind: KindValidation, Message: msg}
}
