package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation")        // 400
	ErrUnauthenticated  = errors.New("unauthenticated")   // 401
	ErrPermissionDenied = errors.New("permission denied") // 403
	ErrNotFound         = errors.New("not found")         // 404
	ErrConflict         = errors.New("conflict")          // 409
)

// Error carries a machine readable code next to its kind. errors.Is matches
// both the kind and the exact sentinel value.
type Error struct {
	Kind error
	Code string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func NewValidation(code, msg string) *Error {
	return &Error{Kind: ErrValidation, Code: code, Msg: msg}
}

func Validationf(format string, args ...any) *Error {
	return NewValidation("validation_error", fmt.Sprintf(format, args...))
}

func NotFound(what string) *Error {
	return &Error{Kind: ErrNotFound, Code: "not_found", Msg: what + " not found"}
}

func Conflict(msg string) *Error {
	return &Error{Kind: ErrConflict, Code: "conflict", Msg: msg}
}

var (
	ErrInvalidStatus     = NewValidation("invalid_status", "invalid status")
	ErrOrderNotDelivered = NewValidation("order_not_delivered", "order not delivered")
	ErrAlreadyRated      = NewValidation("already_rated", "already rated")
	ErrScoreOutOfRange   = NewValidation("score_out_of_range", "score out of range")
	ErrTotalMismatch     = NewValidation("total_mismatch", "total mismatch")
	ErrUnknownProducer   = NewValidation("unknown_producer", "unknown producer")
	ErrUnknownProduct    = NewValidation("unknown_product", "unknown product")
	ErrTaxIDImmutable    = NewValidation("tax_id_immutable", "tax id is immutable")

	ErrOrderPermission = &Error{Kind: ErrPermissionDenied, Code: "permission_denied", Msg: "order belongs to another producer"}
	ErrLoginRequired   = &Error{Kind: ErrUnauthenticated, Code: "unauthenticated", Msg: "authentication required"}
)

// CodeOf returns the machine readable code for err, falling back to its kind.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Code != "" {
		return de.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
