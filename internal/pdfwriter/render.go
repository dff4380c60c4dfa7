package pdfwriter

import (
	"github.com/chinmay-sawant/legalcompose/internal/model"
)

const pageNumberFontSize = 10.0
const signatureLineWidth = 0.75 // within spec §4.7's 0.5-1.0pt range

// renderedPage is one finished page's content stream plus the media
// box it was drawn against.
type renderedPage struct {
	content   []byte
	mediaBox  model.Area
}

// RenderPage draws page's blocks into a content stream, top-down from
// the usable area's top-left corner, honoring rules' margins and the
// requested page-number position/format. It returns the finished page
// plus any encoding warnings raised while drawing text.
func RenderPage(page model.Page, rules model.FormattingRules, pageSize model.Area, format model.PageNumberFormat, fontsUsed map[model.Font]bool) (renderedPage, []model.Warning) {
	cb := newContentBuilder(fontsUsed)
	var warnings []model.Warning

	top := rules.Margins.Top
	if page.Number == 1 && rules.FirstPageTopMargin != nil {
		top = *rules.FirstPageTopMargin
	}
	left := rules.Margins.Left

	cursorY := 0.0 // distance from the top of the usable area, increasing downward

	for _, b := range page.Blocks {
		switch b.Kind {
		case model.BlockText:
			lineHeight := b.LineGap
			if lineHeight <= 0 {
				lineHeight = b.FontSize * 1.2
			}
			for _, line := range b.Lines {
				x := left + b.Indent
				y := pageSize.Height - top - cursorY - b.FontSize
				if cb.showText(b.TextFont, b.FontSize, x, y, line) {
					warnings = append(warnings, model.Warning{
						Code:    model.WarnCharacterReplaced,
						Message: "one or more characters fell outside WinAnsi encoding and were replaced with '?'",
					})
				}
				cursorY += lineHeight
			}

		case model.BlockHeading:
			font := model.FontTimesRoman
			if b.Bold {
				font = model.FontTimesBold
			}
			x := left
			y := pageSize.Height - top - cursorY - b.FontSize
			if cb.showText(font, b.FontSize, x, y, b.HeadingText) {
				warnings = append(warnings, model.Warning{Code: model.WarnCharacterReplaced, Message: "heading text contained an unencodable character"})
			}
			cursorY += b.Height

		case model.BlockRule:
			y := pageSize.Height - top - cursorY - b.Height/2
			x1 := left
			x2 := pageSize.Width - rules.Margins.Right
			cb.drawLine(x1, y, x2, y, b.Thickness)
			cursorY += b.Height

		case model.BlockSpacer:
			cursorY += b.SpacerHeight

		case model.BlockSignature:
			cursorY += renderSignature(cb, b, left, pageSize.Width-rules.Margins.Right, pageSize.Height, top, cursorY, rules)
		}
	}

	if rules.PageNumberPosition != model.PageNumberNone {
		drawPageNumber(cb, page.Number, rules, pageSize, format, fontsUsed)
	}

	return renderedPage{content: cb.finish(), mediaBox: pageSize}, warnings
}

// renderSignature draws a signature-block record's lines and field
// labels, honoring single vs. side-by-side layout, and returns the
// vertical space consumed (equal to b.Height, spec §4.5).
func renderSignature(cb *contentBuilder, b model.Block, left, right, pageHeight, top, cursorY float64, rules model.FormattingRules) float64 {
	if b.Record == nil {
		return b.Height
	}

	if b.Record.Layout == model.LayoutSideBySide && len(b.Record.Parties) >= 1 {
		colWidth := (right - left - 36) / 2
		if len(b.Record.Parties) > 0 {
			drawParty(cb, b.Record.Parties[0], left, left+colWidth, pageHeight, top, cursorY, rules)
		}
		if len(b.Record.Parties) > 1 {
			drawParty(cb, b.Record.Parties[1], right-colWidth, right, pageHeight, top, cursorY, rules)
		}
	} else {
		y := cursorY
		for _, p := range b.Record.Parties {
			drawParty(cb, p, left, right, pageHeight, top, y, rules)
			y += partyVerticalSpan(p)
		}
	}

	if b.Record.NotaryRequired {
		drawNotaryBlock(cb, b.Record, left, right, pageHeight, top, cursorY, b.Height, rules)
	}

	return b.Height
}

func partyVerticalSpan(p model.SignatureParty) float64 {
	h := 30.0
	if p.Name != "" {
		h += 20
	}
	if p.Title != "" {
		h += 20
	}
	if p.Company != "" {
		h += 20
	}
	if p.Date != "" {
		h += 20
	}
	return h + 20
}

func drawParty(cb *contentBuilder, p model.SignatureParty, left, right, pageHeight, top, cursorY float64, rules model.FormattingRules) {
	font := rules.Font
	size := 11.0
	lineY := pageHeight - top - cursorY - 20
	cb.drawLine(left, lineY, right-18, lineY, signatureLineWidth)

	row := cursorY + 20
	draw := func(text string) {
		y := pageHeight - top - row - size
		cb.showText(font, size, left, y, text)
		row += 20
	}
	if p.Role != "" {
		draw(p.Role)
	}
	if p.Name != "" {
		draw("Name: " + p.Name)
	}
	if p.Title != "" {
		draw("Title: " + p.Title)
	}
	if p.Company != "" {
		draw("Company: " + p.Company)
	}
	if p.Date != "" {
		draw("Date: " + p.Date)
	}
}

func drawNotaryBlock(cb *contentBuilder, record *model.SignatureBlockRecord, left, right, pageHeight, top, cursorY, totalHeight float64, rules model.FormattingRules) {
	size := 11.0
	baseline := cursorY + totalHeight - (acknowledgementLines*20 + notarySignatureSlot + commissionLineCount*20 + sealPlaceholderHeight)
	ack := []string{
		"State of " + notaryField(record, func(p model.SignatureParty) string { return p.NotaryState }),
		"County of " + notaryField(record, func(p model.SignatureParty) string { return p.NotaryCounty }),
		"Sworn to and subscribed before me on the date set forth above.",
		"",
	}
	y := baseline
	for _, line := range ack {
		if line != "" {
			cb.showText(rules.Font, size, left, pageHeight-top-y-size, line)
		}
		y += 20
	}

	lineY := pageHeight - top - y - 20
	cb.drawLine(left, lineY, right-18, lineY, signatureLineWidth)
	cb.showText(rules.Font, size, left, pageHeight-top-(y+20)-size, "Notary Public")
	y += notarySignatureSlot

	for i := 0; i < commissionLineCount; i++ {
		var text string
		if i == 0 {
			text = "Commission Expires: " + notaryField(record, func(p model.SignatureParty) string { return p.CommissionExpires })
		} else {
			text = "Commission #: " + notaryField(record, func(p model.SignatureParty) string { return p.CommissionNumber })
		}
		cb.showText(rules.Font, size, left, pageHeight-top-y-size, text)
		y += 20
	}

	cb.showText(rules.Font, size, left, pageHeight-top-y-size, "[SEAL]")
}

func notaryField(record *model.SignatureBlockRecord, get func(model.SignatureParty) string) string {
	for _, p := range record.Parties {
		if v := get(p); v != "" {
			return v
		}
	}
	return ""
}

const (
	acknowledgementLines  = 4
	notarySignatureSlot   = 30.0
	commissionLineCount   = 2
	sealPlaceholderHeight = 20.0
)

func drawPageNumber(cb *contentBuilder, pageNumber int, rules model.FormattingRules, pageSize model.Area, format model.PageNumberFormat, fontsUsed map[model.Font]bool) {
	text := pageNumberText(format, pageNumber)
	width := TextWidth(model.FontTimesRoman, pageNumberFontSize, text)

	y := 36.0
	var x float64
	switch rules.PageNumberPosition {
	case model.PageNumberBottomLeft:
		x = rules.Margins.Left
	case model.PageNumberBottomRight:
		x = pageSize.Width - rules.Margins.Right - width
	default:
		x = (pageSize.Width - width) / 2
	}
	cb.showText(model.FontTimesRoman, pageNumberFontSize, x, y, text)
	fontsUsed[model.FontTimesRoman] = true
}
