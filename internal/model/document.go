package model

// LineKind classifies a single residual source line after marker and
// signature-block content has been stripped (spec §3 "cleanLines").
type LineKind int

const (
	LineProse LineKind = iota
	LineHeading
	LineRule
)

// CleanLine is one surviving line of the parsed document, tagged with
// its Markdown-recognized kind. HeadingLevel is only meaningful when
// Kind == LineHeading.
type CleanLine struct {
	Kind         LineKind
	Text         string
	HeadingLevel int
	Blank        bool
}

// ParsedDocument is the output of marker + Markdown recognition: the
// residual prose/heading/rule lines plus the structured signature
// blocks extracted from the source (spec §3).
type ParsedDocument struct {
	CleanLines      []CleanLine
	SignatureBlocks []SignatureBlockRecord
	HasSignatures   bool
	Warnings        []Warning
}

// WarningCode names a non-fatal condition collected into the result
// descriptor (spec §7). These are distinct from the fatal errs.Code
// taxonomy even though several share a name, because a warning never
// aborts the pipeline.
type WarningCode string

const (
	WarnInvalidMarkerID       WarningCode = "INVALID_MARKER_ID"
	WarnEmptySignatureBlock   WarningCode = "EMPTY_SIGNATURE_BLOCK"
	WarnCharacterReplaced     WarningCode = "ENCODING_CHARACTER_REPLACED"
	WarnForcedPlacement       WarningCode = "SIGNATURE_BLOCK_OVERSIZED"
	WarnMissingMetadata       WarningCode = "MISSING_METADATA"
	WarnUnterminatedBlock     WarningCode = "UNTERMINATED_SIGNATURE_BLOCK"
)

// Warning is a non-fatal, collected condition (spec §7): carries a
// stable code, a human message, and free-form context for hosts that
// want to render it.
type Warning struct {
	Code    WarningCode
	Message string
	Context map[string]string
}
