// Package errs defines the stable, boundary-facing error taxonomy from
// spec §6/§7: a tagged error type with a stable code string usable by
// hosts for UI mapping, plus sentinel values for errors.Is matching.
//
// Grounded on rendis-doc-assembly's port-level sentinel-error pattern
// (internal/core/port), adapted: that codebase wraps database/HTTP
// failures; ours wraps parser/layout/writer failures and carries no
// persistence concerns.
package errs

import "errors"

// Code is one of the stable error identifiers from spec §6.
type Code string

const (
	CodeInvalidDocumentType   Code = "INVALID_DOCUMENT_TYPE"
	CodeInvalidMarkerID       Code = "INVALID_MARKER_ID"
	CodeEmptyContent          Code = "EMPTY_CONTENT"
	CodeSignatureOversized    Code = "SIGNATURE_BLOCK_OVERSIZED"
	CodeEncodingUnsupported   Code = "ENCODING_UNSUPPORTED"
	CodeSinkIOError           Code = "SINK_IO_ERROR"
	CodeCancelled             Code = "CANCELLED"
	CodeInternal              Code = "INTERNAL"
)

// Error is the fatal, boundary-facing error variant. Warnings never
// become an Error; only the first fatal condition encountered by the
// pipeline is converted into one (spec §9, "Error propagation").
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an *Error that also carries the lower-level cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinel values for errors.Is comparisons against well-known fatal
// conditions that do not need a dynamic message.
var (
	ErrInvalidDocumentType = New(CodeInvalidDocumentType, "unknown document type")
	ErrEmptyContent        = New(CodeEmptyContent, "document content is empty")
	ErrCancelled           = New(CodeCancelled, "pipeline invocation was cancelled")
)

// Is lets errors.Is match two *Error values by code, matching the
// sentinel-comparison idiom used throughout the pipeline without
// requiring identical messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}
