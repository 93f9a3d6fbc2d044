// Package diag defines the diagnostic model shared by all pipeline phases.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX####, SYN####, SEM####, BCK####, IO####, PRJ####).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Fail-fast errors
//
// The pipeline stops at the first error. That error travels as *Error, which
// wraps one Diagnostic and unwraps to a class sentinel (ErrSyntax,
// ErrUnsupportedConstruct, ErrUnknownNamespace, ErrUnknownType,
// ErrBackendCompile, ErrIO, ErrProject). The class is derived from the code
// range, so new codes join a class by picking a number.
//
// Backend errors may be unanchored: the shader compiler reported a line the
// source map cannot attribute, and the raw message is passed through.
//
// # Emitting diagnostics
//
// Phases use a Reporter to decouple emission from storage. The lexer and the
// parser build a ReportBuilder via ReportError and call Emit; BagReporter
// collects into a Bag. A Bag created with NewBag(1) is the single-error budget
// the parser runs with.
//
// Rendering lives in internal/diagfmt.
package diag
