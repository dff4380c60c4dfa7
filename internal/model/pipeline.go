package model

import "time"

// Milestone names a point in the pipeline at which a progress listener
// is invoked synchronously (spec §4.8/§5).
type Milestone string

const (
	MilestoneInitializing     Milestone = "initializing"
	MilestoneLoadingRules     Milestone = "loading-rules"
	MilestoneParsingSignatures Milestone = "parsing-signatures"
	MilestoneBuildingBlocks   Milestone = "building-blocks"
	MilestoneComputingLayout  Milestone = "computing-layout"
	MilestoneWritingPage      Milestone = "writing-page"
	MilestoneFinalizing       Milestone = "finalizing"
)

// ProgressEvent is what a progress listener receives. Not every field
// is populated at every milestone: SignatureCount at
// parsing-signatures, PageCount at computing-layout, Page/TotalPages at
// writing-page.
type ProgressEvent struct {
	Milestone      Milestone
	SignatureCount int
	PageCount      int
	Page           int
	TotalPages     int
}

// ProgressFunc is the pure callback a host supplies; the pipeline
// makes no assumption about where events travel (spec §4.8).
type ProgressFunc func(ProgressEvent)

// FormattingOverride is a caller-supplied per-type rule delta (spec
// §6). Nil fields mean "leave the base rule alone" — the merge in
// formatting.RulesFor is additive/non-mutating (spec §9).
type FormattingOverride struct {
	LineSpacing        *LineSpacing
	FontSize           *float64
	Margins            *Margins
	PageNumberPosition *PageNumberPosition
}

// Options is the recognized option set from spec §6.
type Options struct {
	FormattingOverrides map[DocumentType]FormattingOverride
	PageNumberFormat    PageNumberFormat
	Metadata            Metadata
	Progress            ProgressFunc
	Cancel              <-chan struct{}
	Strict              bool
	GeneratedAt         *time.Time // pinned for byte-identical round-trip tests (spec §8)
}

// Result is the descriptor returned by the pipeline (spec §4.8/§6).
type Result struct {
	ByteCount           int
	PageCount           int
	SignatureBlockCount int
	Warnings            []Warning
	DocumentType        DocumentType
	GeneratedAt         time.Time
	Cancelled           bool
}
