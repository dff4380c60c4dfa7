// Package formatting implements the DocumentFormatter (spec §4.4): a
// static, process-wide, immutable mapping from document type to base
// formatting rules, merged non-destructively with caller-supplied
// overrides (spec §9, "Singletons for formatting rules").
//
// Grounded on the teacher's page-size table in internal/pdf/types.go
// (a plain map literal keyed by a closed string set, with a single
// lookup helper) — the same shape, specialized to document types
// instead of paper sizes.
package formatting

import "github.com/chinmay-sawant/legalcompose/internal/model"

// usLetter is the only page size the spec recognizes (spec §6).
var usLetter = model.Area{Width: 612, Height: 792}

func ptr(f float64) *float64 { return &f }

// baseRules is the immutable, process-wide rule table (spec §3/§9).
// Do not mutate entries returned from it; RulesFor always returns a
// copy.
var baseRules = map[model.DocumentType]model.FormattingRules{
	model.ProvisionalPatentApplication: {
		LineSpacing: model.SpacingSingle, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      36,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.OfficeActionResponse: {
		LineSpacing: model.SpacingDouble, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   model.PageNumberBottomRight,
		ParagraphIndent:      0,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
		FirstPageTopMargin:   ptr(108),
	},
	model.TrademarkApplication: {
		LineSpacing: model.SpacingSingle, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      36,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.PatentAssignmentAgreement: {
		LineSpacing: model.SpacingOneHalf, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 90, Right: 90},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      0,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.NDAIPSpecific: {
		LineSpacing: model.SpacingSingle, FontSize: 11, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      0,
		ParagraphSpacing:     10,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.PatentLicenseAgreement: {
		LineSpacing: model.SpacingOneHalf, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 90, Right: 90},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      0,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.TechnologyTransferAgreement: {
		LineSpacing: model.SpacingOneHalf, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 90, Right: 90},
		PageNumberPosition:   model.PageNumberBottomCenter,
		ParagraphIndent:      0,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
	model.CeaseAndDesistLetter: {
		LineSpacing: model.SpacingSingle, FontSize: 12, Font: model.FontTimesRoman,
		Margins:              model.Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   model.PageNumberBottomLeft,
		ParagraphIndent:      0,
		ParagraphSpacing:     12,
		SignatureLineSpacing: model.SpacingSingle,
	},
}

// spacingPoints is the line-spacing-constant table from spec §3.
var spacingPoints = map[model.LineSpacing]float64{
	model.SpacingSingle:  0,
	model.SpacingOneHalf: 6,
	model.SpacingDouble:  12,
}

// LineSpacingPoints returns the points added to base line height for a
// given spacing setting (spec §4.4).
func LineSpacingPoints(spacing model.LineSpacing) float64 {
	return spacingPoints[spacing]
}

// CalculateLineHeight implements spec §4.4's
// `fontSize · 1.2 + spacing-addition`. The product is computed as
// fontSize*6/5 so that, e.g., 12pt yields exactly 14.4.
func CalculateLineHeight(fontSize float64, spacing model.LineSpacing) float64 {
	return fontSize*6/5 + LineSpacingPoints(spacing)
}

// Spacing multipliers for paragraph/section/list/title spacing,
// derived from a type's base ParagraphSpacing (spec §4.4).
const (
	paragraphMultiplier = 1.0
	sectionMultiplier   = 1.5
	listMultiplier      = 0.5
	titleMultiplier     = 2.0
)

func ParagraphSpacing(rules model.FormattingRules) float64 { return rules.ParagraphSpacing * paragraphMultiplier }
func SectionSpacing(rules model.FormattingRules) float64   { return rules.ParagraphSpacing * sectionMultiplier }
func ListSpacing(rules model.FormattingRules) float64      { return rules.ParagraphSpacing * listMultiplier }
func TitleSpacing(rules model.FormattingRules) float64     { return rules.ParagraphSpacing * titleMultiplier }

// RulesFor returns the base rules for dt merged with any caller
// override (spec §4.4). The merge is non-mutating: base table entries
// are never modified (spec §9).
func RulesFor(dt model.DocumentType, override model.FormattingOverride) model.FormattingRules {
	rules := baseRules[dt] // copy; map values of struct type are copied out

	if override.LineSpacing != nil {
		rules.LineSpacing = *override.LineSpacing
	}
	if override.FontSize != nil {
		rules.FontSize = *override.FontSize
	}
	if override.Margins != nil {
		rules.Margins = *override.Margins
	}
	if override.PageNumberPosition != nil {
		rules.PageNumberPosition = *override.PageNumberPosition
	}
	return rules
}

// UsableAreaFor returns the usable content area under rules on the given
// 1-based page number, honoring the first-page top-margin policy
// (spec §4.4): office-action-response uses 108pt on page 1, 72pt
// thereafter.
func UsableAreaFor(rules model.FormattingRules, pageNumber int) model.Area {
	top := rules.Margins.Top
	if pageNumber == 1 && rules.FirstPageTopMargin != nil {
		top = *rules.FirstPageTopMargin
	}
	return model.Area{
		Width:  usLetter.Width - rules.Margins.Left - rules.Margins.Right,
		Height: usLetter.Height - top - rules.Margins.Bottom,
	}
}

// PageSize returns the fixed US Letter page size (spec §6).
func PageSize() model.Area { return usLetter }

// UsableWidth returns the horizontal content width for rules, independent
// of page number (unlike UsableAreaFor's height, no margin in the spec's
// table varies the width by page).
func UsableWidth(rules model.FormattingRules) float64 {
	return usLetter.Width - rules.Margins.Left - rules.Margins.Right
}
