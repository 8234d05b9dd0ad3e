package apiclient

import (
	"errors"
	"fmt"
	"log/slog"

	"market-admin/internal/pkg/errs"
)

type ErrorKind string

// Failure kinds surfaced by the client
const (
	KindTransport ErrorKind = "TRANSPORT"
	KindStatus    ErrorKind = "STATUS"
	KindDecode    ErrorKind = "DECODE"
)

// Error is returned for every failed call. Status is zero for transport and
// pre-flight failures.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Detail  string
	Method  string
	Path    string
	err     error // wrapped low-level error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s %s", e.Kind, e.Method, e.Path)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func wrapErr(logger *slog.Logger, kind ErrorKind, method, path string, status int, message, detail string, err error) *Error {
	logger.Warn("Admin API error: "+message,
		slog.String("kind", string(kind)),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	if err != nil {
		err = errs.Wrap(err, message)
	}

	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
		Detail:  detail,
		Method:  method,
		Path:    path,
		err:     err,
	}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Validator is implemented by response contracts that check themselves after decoding.
type Validator interface {
	Validate() error
}
