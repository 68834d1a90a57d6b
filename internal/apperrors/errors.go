package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a client-facing failure. Every kind maps to exactly one
// HTTP status code in StatusCode.
type Kind int

const (
	KindInternal Kind = iota
	KindCreationFailed
	KindFetchFailed
	KindNotFound
	KindInvalidTransition
	KindUnauthorized
	KindValidation
)

// Error is a client-facing, non-fatal failure carrying its kind and an
// optional underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status code. NotFound is served
// in the 400 family alongside the other fetch failures.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindCreationFailed, KindFetchFailed, KindNotFound, KindInvalidTransition, KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind with an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound creates a NotFound error for the named entity and ID.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with ID %s not found", entity, id)}
}

// CreationFailed creates a CreationFailed error.
func CreationFailed(message string, err error) *Error {
	return &Error{Kind: KindCreationFailed, Message: message, Err: err}
}

// InvalidTransition creates an InvalidTransition error.
func InvalidTransition(message string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: message}
}

// Unauthorized creates an Unauthorized error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// ErrorHandler is the centralized Fiber error responder. Handlers return
// errors instead of writing error responses themselves, so a single response
// is produced per request.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
