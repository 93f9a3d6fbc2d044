package diag

import (
	"errors"
	"fmt"

	"yasl/internal/source"
)

// Error classes. Every *Error unwraps to exactly one of them, so callers
// can test with errors.Is(err, diag.ErrUnsupportedConstruct).
var (
	ErrSyntax               = errors.New("syntax error")
	ErrUnsupportedConstruct = errors.New("unsupported construct")
	ErrUnknownNamespace     = errors.New("unknown identifier namespace")
	ErrUnknownType          = errors.New("unknown type")
	ErrBackendCompile       = errors.New("backend compile error")
	ErrIO                   = errors.New("i/o error")
	ErrProject              = errors.New("project error")
	ErrInternal             = errors.New("internal error")
)

// Class maps a code to its error class.
func (c Code) Class() error {
	switch ic := int(c); {
	case ic >= 2500 && ic < 2600:
		return ErrUnsupportedConstruct
	case ic >= 2600 && ic < 2700:
		return ErrUnknownNamespace
	case ic >= 2700 && ic < 2800:
		return ErrUnknownType
	case ic >= 1000 && ic < 3000:
		return ErrSyntax
	case ic >= 4000 && ic < 5000:
		return ErrBackendCompile
	case ic >= 5000 && ic < 6000:
		return ErrIO
	case ic >= 6000 && ic < 7000:
		return ErrProject
	}
	return ErrInternal
}

// Error is a single fail-fast diagnostic travelling as a Go error.
// An unanchored error has no meaningful Primary span.
type Error struct {
	Diag     Diagnostic
	anchored bool
}

// FromDiagnostic wraps an anchored diagnostic.
func FromDiagnostic(d Diagnostic) *Error {
	return &Error{Diag: d, anchored: true}
}

// Errorf builds an anchored error-level diagnostic.
func Errorf(code Code, span source.Span, format string, args ...any) *Error {
	return FromDiagnostic(NewError(code, span, fmt.Sprintf(format, args...)))
}

// Unanchored builds an error that carries no source location.
func Unanchored(code Code, msg string) *Error {
	return &Error{Diag: Diagnostic{Severity: SevError, Code: code, Message: msg}}
}

func (e *Error) Error() string {
	return e.Diag.Code.ID() + ": " + e.Diag.Message
}

func (e *Error) Unwrap() error {
	return e.Diag.Code.Class()
}

// Anchored reports whether Diag.Primary points into a source file.
func (e *Error) Anchored() bool {
	return e.anchored
}

// Code returns the diagnostic code.
func (e *Error) Code() Code {
	return e.Diag.Code
}

// Span returns the primary span and whether it is meaningful.
func (e *Error) Span() (source.Span, bool) {
	return e.Diag.Primary, e.anchored
}

// AsError extracts the first *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
