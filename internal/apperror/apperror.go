package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code classifies failures surfaced to callers.
type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeValidation Code = "validation"
	CodeConflict   Code = "conflict"
)

// Error carries a code and message while keeping the cause reachable via Unwrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// GRPCStatus lets status.FromError and status.Code read the code directly.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(grpcCode(e.Code), e.Message)
}

func NotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to cause.
func Wrap(code Code, cause error, message string) error {
	return &Error{Code: code, Message: message, cause: cause}
}

func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func IsNotFound(err error) bool   { return is(err, CodeNotFound) }
func IsValidation(err error) bool { return is(err, CodeValidation) }
func IsConflict(err error) bool   { return is(err, CodeConflict) }

func is(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// ToGRPC converts any error into a status error. Uncoded errors become Internal.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return status.Error(grpcCode(e.Code), e.Message)
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}

func grpcCode(c Code) codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeValidation:
		return codes.InvalidArgument
	case CodeConflict:
		return codes.Aborted
	default:
		return codes.Internal
	}
}
