// Package blockbuilder implements the BlockBuilder (spec §4.5): it
// walks a parsed document's residual lines and signature-block records
// and produces the ordered sequence of typed layout blocks the
// LayoutEngine paginates.
//
// Grounded on the teacher's drawTitle/drawTable content-measurement
// style in internal/pdf/draw.go: heights are computed up front from
// the resolved font/spacing before anything is emitted, never
// recomputed mid-write.
package blockbuilder

import (
	"github.com/chinmay-sawant/legalcompose/internal/formatting"
	"github.com/chinmay-sawant/legalcompose/internal/model"
	"github.com/chinmay-sawant/legalcompose/internal/pdfwriter"
)

// signatureLineSlot, fieldLineHeight, etc. are the fixed per-field
// height contributions from spec §4.5.
const (
	signatureLineSlot  = 30.0
	fieldLineHeight    = 20.0
	interPartyPadding  = 20.0
	acknowledgementLine = 20.0
	acknowledgementLines = 4
	notarySignatureSlot = 30.0
	commissionLineCount = 2
	sealPlaceholderHeight = 20.0
)

// Build transforms a parsed document into an ordered sequence of
// layout blocks, using rules (already resolved for the target document
// type) to compute the final font/spacing blocks are measured against
// (spec §4.5: "heights MUST be computed from the final font and
// spacing chosen by DocumentFormatter... not nominal defaults").
func Build(doc model.ParsedDocument, rules model.FormattingRules) []model.Block {
	var blocks []model.Block
	lineHeight := formatting.CalculateLineHeight(rules.FontSize, rules.LineSpacing)
	usableWidth := formatting.UsableWidth(rules) - rules.ParagraphIndent

	var paragraph []string
	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		// Source line breaks are authoritative; a line is only split
		// further when it would run past the usable content width.
		var rendered []string
		for _, line := range paragraph {
			rendered = append(rendered, pdfwriter.WrapText(line, rules.Font, rules.FontSize, usableWidth)...)
		}
		blocks = append(blocks, model.Block{
			Kind:      model.BlockText,
			Lines:     rendered,
			FontSize:  rules.FontSize,
			TextFont:  rules.Font,
			LineGap:   lineHeight,
			Indent:    rules.ParagraphIndent,
			Height:    float64(len(rendered)) * lineHeight,
			Breakable: true,
		})
		blocks = append(blocks, model.Block{
			Kind:         model.BlockSpacer,
			SpacerHeight: formatting.ParagraphSpacing(rules),
			Height:       formatting.ParagraphSpacing(rules),
		})
		paragraph = nil
	}

	signatureIdx := 0
	lines := doc.CleanLines
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case line.Blank:
			flushParagraph()

		case line.Kind == model.LineHeading:
			flushParagraph()
			blocks = append(blocks, model.Block{
				Kind:         model.BlockHeading,
				Level:        line.HeadingLevel,
				HeadingText:  line.Text,
				FontSize:     headingFontSize(line.HeadingLevel),
				Bold:         headingBold(line.HeadingLevel),
				TextFont:     rules.Font,
				Height:       headingFontSize(line.HeadingLevel) * 1.2,
				Breakable:    false,
				KeepWithNext: true,
			})

		case line.Kind == model.LineRule:
			flushParagraph()
			blocks = append(blocks, model.Block{
				Kind:      model.BlockRule,
				Thickness: 1,
				Height:    12,
				Breakable: false,
			})

		default:
			paragraph = append(paragraph, line.Text)
		}
	}
	flushParagraph()

	for signatureIdx < len(doc.SignatureBlocks) {
		record := doc.SignatureBlocks[signatureIdx]
		height := MeasureSignatureHeight(record)
		blocks = append(blocks, model.Block{
			Kind:           model.BlockSignature,
			Record:         &doc.SignatureBlocks[signatureIdx],
			MeasuredHeight: height,
			Height:         height,
			Breakable:      false,
			KeepTogether:   true,
			GroupKey:       record.GroupKey,
		})
		signatureIdx++
	}

	return blocks
}

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	default:
		return 12
	}
}

func headingBold(level int) bool {
	return level >= 1 && level <= 3
}

// MeasureSignatureHeight computes the deterministic height of a
// signature-block record per spec §4.5.
func MeasureSignatureHeight(record model.SignatureBlockRecord) float64 {
	if record.Layout == model.LayoutSideBySide {
		left, right := 0.0, 0.0
		if len(record.Parties) > 0 {
			left = partyHeight(record.Parties[0])
		}
		if len(record.Parties) > 1 {
			right = partyHeight(record.Parties[1])
		}
		height := left
		if right > height {
			height = right
		}
		return height + notaryExtra(record)
	}

	total := 0.0
	for i, p := range record.Parties {
		total += partyHeight(p)
		if i > 0 {
			total += interPartyPadding
		}
	}
	if len(record.Parties) == 0 {
		total = signatureLineSlot
	}
	return total + notaryExtra(record)
}

func partyHeight(p model.SignatureParty) float64 {
	h := signatureLineSlot
	if p.Name != "" {
		h += fieldLineHeight
	}
	if p.Title != "" {
		h += fieldLineHeight
	}
	if p.Company != "" {
		h += fieldLineHeight
	}
	if p.Date != "" {
		h += fieldLineHeight
	}
	return h
}

func notaryExtra(record model.SignatureBlockRecord) float64 {
	if !record.NotaryRequired {
		return 0
	}
	return acknowledgementLines*acknowledgementLine + notarySignatureSlot + commissionLineCount*fieldLineHeight + sealPlaceholderHeight
}
