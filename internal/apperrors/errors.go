// Package apperrors defines the closed set of domain failures and their
// mapping to HTTP statuses and machine-readable codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindUnprocessableEntity
	KindInternal
	KindUnavailable
)

// Error is an application-level failure classified into one of the taxonomy
// kinds, independent of transport. Message is safe to show to clients; the
// wrapped cause is for server-side logging only.
type Error struct {
	Kind    Kind
	Message string
	Details string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying error for diagnostics, or nil.
func (e *Error) Cause() error { return e.cause }

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Code() string {
	switch e.Kind {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	case KindUnavailable:
		return "service_unavailable"
	default:
		return "internal_server_error"
	}
}

// IsServerError reports whether the error maps to a 5xx status.
func (e *Error) IsServerError() bool { return e.Status() >= 500 }

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unprocessable(message string) *Error {
	return &Error{Kind: KindUnprocessableEntity, Message: message}
}

func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

func Unavailable(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505" // unique_violation
)

// FromStorage classifies a storage-layer failure. Unique constraint
// violations become Conflict, foreign key violations BadRequest, missing
// rows NotFound. Anything else is an internal error with a generic client
// message; the raw driver error is kept as the cause and never rendered.
func FromStorage(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return Conflict("A record with these values already exists")
		}
		if strings.HasSuffix(pgErr.ConstraintName, "_fkey") {
			return BadRequest(fmt.Sprintf("Invalid reference: %s", pgErr.ConstraintName))
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("Requested data not found")
	}

	return &Error{Kind: KindInternal, Message: "database error", cause: err}
}

// From returns err unchanged when it is already an *Error, otherwise wraps
// it as an internal error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal error", err)
}
