package httperr

import (
	"errors"
	"fmt"
)

// Kind enumerates the semantic HTTP failure categories.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindInternalServerError
	KindBadResponse
	KindUnclassified
)

var kindNames = map[Kind]string{
	KindBadRequest:          "bad request",
	KindUnauthorized:        "unauthorized",
	KindNotFound:            "not found",
	KindInternalServerError: "internal server error",
	KindBadResponse:         "bad response",
	KindUnclassified:        "unclassified",
}

var kindSlugs = map[Kind]string{
	KindBadRequest:          "bad_request",
	KindUnauthorized:        "unauthorized",
	KindNotFound:            "not_found",
	KindInternalServerError: "internal_server_error",
	KindBadResponse:         "bad_response",
	KindUnclassified:        "unclassified",
}

// String returns the human readable description of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Slug returns a snake_case identifier suitable for metric labels and payloads.
func (k Kind) Slug() string {
	if slug, ok := kindSlugs[k]; ok {
		return slug
	}
	return "unknown"
}

// Error is the classified failure. Every kind except KindBadResponse carries a
// Transaction; KindBadResponse carries an optional Cause instead.
type Error struct {
	Kind        Kind
	Transaction *Transaction
	Cause       error
}

func BadRequest(tx *Transaction) *Error   { return &Error{Kind: KindBadRequest, Transaction: tx} }
func Unauthorized(tx *Transaction) *Error { return &Error{Kind: KindUnauthorized, Transaction: tx} }
func NotFound(tx *Transaction) *Error     { return &Error{Kind: KindNotFound, Transaction: tx} }
func Unclassified(tx *Transaction) *Error { return &Error{Kind: KindUnclassified, Transaction: tx} }

func InternalServerError(tx *Transaction) *Error {
	return &Error{Kind: KindInternalServerError, Transaction: tx}
}

// BadResponse reports a response that could not be interpreted. cause may be nil.
func BadResponse(cause error) *Error {
	return &Error{Kind: KindBadResponse, Cause: cause}
}

// Error implements error with the kind description.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Kind.String()
}

// Unwrap exposes the underlying cause of a bad response.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another *Error of the same kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	return ok && t != nil && t.Kind == e.Kind
}

// StatusCode returns the response status recorded in the transaction, or 0.
func (e *Error) StatusCode() int {
	if e == nil || e.Transaction == nil {
		return 0
	}
	return e.Transaction.response.StatusCode
}

// Normalize maps any error to an *Error. Errors that already are (or wrap) an
// *Error pass through unchanged; anything else becomes a bad response.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var herr *Error
	if errors.As(err, &herr) {
		return herr
	}
	return BadResponse(err)
}
