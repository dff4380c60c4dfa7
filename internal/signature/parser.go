// Package signature implements the SignatureMarkerParser (spec §4.3):
// it scans a document's lines top-to-bottom, extracts
// `[SIGNATURE_BLOCK:id]` / `[INITIALS_BLOCK:id]` / `[NOTARY_BLOCK:id]`
// markers and the structured party content that follows them, and
// returns the residual prose/heading/rule lines alongside the parsed
// signature-block records.
//
// Grounded on the teacher's (chinmay-sawant-gopdfsuit) hand-written,
// regexp-driven content classification in internal/pdf/utils.go
// (parseProps/parseBorders): small, purpose-built regexes over a line
// at a time rather than a general grammar, because the block-boundary
// rules here (blank-line runs, section-header lookalikes, whitelisted
// role exceptions) have no equivalent in a general-purpose parser.
package signature

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/chinmay-sawant/legalcompose/internal/markdown"
	"github.com/chinmay-sawant/legalcompose/internal/model"
)

var (
	markerPattern = regexp.MustCompile(`^\[(SIGNATURE_BLOCK|INITIALS_BLOCK|NOTARY_BLOCK):([^\]]*)\]$`)

	sectionHeaderPattern = regexp.MustCompile(`^[A-Z][A-Z\s]+:?$`)
	numberedSection      = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
	articlePattern       = regexp.MustCompile(`^ARTICLE\s+[IVX\d]+`)
	sectionPattern       = regexp.MustCompile(`^SECTION\s+\d+`)

	roleHeaderPattern = regexp.MustCompile(`^([A-Z][A-Z\s]*?):?$`)
	signatureLineRun  = regexp.MustCompile(`_{10,}`)
	shortUnderlineRun = regexp.MustCompile(`_{3,8}`)
	bigGapPattern     = regexp.MustCompile(`[ \t]{5,}|\t`)

	labelField = regexp.MustCompile(`(?i)^(Name|Print(?:ed)? Name|By|Title|Company|Date)\s*:\s*(.*)$`)

	stateOf             = regexp.MustCompile(`(?i)^State of\s+(.+)$`)
	countyOf            = regexp.MustCompile(`(?i)^County of\s+(.+)$`)
	commissionExpiresRE = regexp.MustCompile(`(?i)^My commission expires\s*:?\s*(.*)$`)
	commissionNumberRE  = regexp.MustCompile(`(?i)^Commission\s*#\s*:?\s*(.*)$`)
	sealPlaceholder     = regexp.MustCompile(`(?i)^\[SEAL\]$|(?i)^Notary Seal$|(?i)^Place Seal Here$`)
)

// Parse scans lines top-to-bottom and returns the parsed document:
// residual clean lines plus structured signature-block records.
func Parse(lines []string) model.ParsedDocument {
	doc := model.ParsedDocument{}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if m := markerPattern.FindStringSubmatch(trimmed); m != nil {
			markerType := markerTypeOf(m[1])
			id := m[2]
			if !model.ValidMarkerID(id) {
				doc.Warnings = append(doc.Warnings, model.Warning{
					Code:    model.WarnInvalidMarkerID,
					Message: "marker id is not valid kebab-case; treating marker as literal text",
					Context: map[string]string{"id": id, "line": strconv.Itoa(i)},
				})
				doc.CleanLines = append(doc.CleanLines, model.CleanLine{Kind: model.LineProse, Text: trimmed})
				i++
				continue
			}

			end, terminatedByMarker := findBlockEnd(lines, i+1)
			record, warnings := extractBlock(model.SignatureMarker{Type: markerType, ID: id, Start: i + 1, End: end}, lines[i+1:end])
			doc.SignatureBlocks = append(doc.SignatureBlocks, record)
			doc.Warnings = append(doc.Warnings, warnings...)
			doc.HasSignatures = true

			if terminatedByMarker {
				i = end
			} else {
				i = end
			}
			continue
		}

		doc.CleanLines = append(doc.CleanLines, classifyLine(lines[i]))
		i++
	}

	sortByPositionOrdinal(doc.SignatureBlocks)

	return doc
}

// sortByPositionOrdinal stable-sorts blocks sharing a groupKey by their
// marker's numeric position ordinal (spec §6: "a numeric suffix -<digits>
// is interpreted as a position ordinal for stable sorting"). Blocks in
// different groups, and blocks whose id carries no numeric suffix, keep
// their original document-encounter order.
func sortByPositionOrdinal(blocks []model.SignatureBlockRecord) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].GroupKey != blocks[j].GroupKey {
			return false
		}
		ordI, okI := positionOrdinal(blocks[i].Marker.ID)
		ordJ, okJ := positionOrdinal(blocks[j].Marker.ID)
		if !okI || !okJ {
			return false
		}
		return ordI < ordJ
	})
}

func classifyLine(line string) model.CleanLine {
	if strings.TrimSpace(line) == "" {
		return model.CleanLine{Kind: model.LineProse, Blank: true}
	}
	kind, level, text := markdown.Classify(line)
	return model.CleanLine{Kind: kind, Text: text, HeadingLevel: level}
}

func markerTypeOf(tag string) model.MarkerType {
	switch tag {
	case "INITIALS_BLOCK":
		return model.MarkerInitial
	case "NOTARY_BLOCK":
		return model.MarkerNotary
	default:
		return model.MarkerSignature
	}
}

// findBlockEnd returns the index (exclusive) where the block started
// at `start` ends, per spec §4.3 (a)-(c), and whether a following
// marker line caused the cut (informational only; both paths resume
// scanning at the returned index).
func findBlockEnd(lines []string, start int) (end int, byMarker bool) {
	blankStreak := 0
	sawContent := false

	for j := start; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])

		if markerPattern.MatchString(trimmed) {
			return j, true
		}

		if trimmed == "" {
			blankStreak++
			if blankStreak >= 2 && sawContent {
				return j - 1, false
			}
			continue
		}
		blankStreak = 0

		if isSectionBreak(trimmed) {
			return j, false
		}

		sawContent = true
	}

	return len(lines), false
}

// isSectionBreak reports whether trimmed is a section-header-shaped
// line that is NOT a whitelisted party role (spec §4.3). A line
// carrying a wide internal gap is a candidate side-by-side role-header
// row (e.g. "DISCLOSING PARTY          RECEIVING PARTY") and is never
// treated as a section break, even though neither half alone matches
// the whitelist as a combined string.
func isSectionBreak(trimmed string) bool {
	if bigGapPattern.MatchString(trimmed) {
		return false
	}
	if numberedSection.MatchString(trimmed) || articlePattern.MatchString(trimmed) || sectionPattern.MatchString(trimmed) {
		return true
	}
	if sectionHeaderPattern.MatchString(trimmed) {
		role := strings.TrimSuffix(trimmed, ":")
		if model.IsPartyRole(role) {
			return false
		}
		return true
	}
	return false
}

// extractBlock parses the content lines of one already-delimited
// signature block into a structured record.
func extractBlock(marker model.SignatureMarker, content []string) (model.SignatureBlockRecord, []model.Warning) {
	record := model.SignatureBlockRecord{
		Marker:         marker,
		NotaryRequired: marker.Type == model.MarkerNotary,
		GroupKey:       groupKeyOf(marker.ID),
	}
	var warnings []model.Warning

	sideBySide := false
	var parties []model.SignatureParty
	var left, right *model.SignatureParty
	var current *model.SignatureParty

	appendParty := func() {
		if current != nil {
			parties = append(parties, *current)
			current = nil
		}
	}

	for _, raw := range content {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if sealPlaceholder.MatchString(trimmed) {
			continue
		}

		if !sideBySide {
			if gapIdx := bigGapPattern.FindStringIndex(raw); gapIdx != nil && looksLikeSideBySide(raw) {
				sideBySide = true
				appendParty()
				left = &model.SignatureParty{}
				right = &model.SignatureParty{}
				applySplitLine(raw, &left, &right, marker.Type)
				continue
			}
		} else if gapIdx := bigGapPattern.FindStringIndex(raw); gapIdx != nil {
			applySplitLine(raw, &left, &right, marker.Type)
			continue
		}

		applyContentLine(trimmed, &current, appendParty, marker.Type)
	}

	appendParty()
	if sideBySide {
		if left != nil && !left.IsZero() {
			parties = append(parties, *left)
		}
		if right != nil && !right.IsZero() {
			parties = append(parties, *right)
		}
	}

	if len(parties) == 0 {
		warnings = append(warnings, model.Warning{
			Code:    model.WarnEmptySignatureBlock,
			Message: "signature block has no parsed parties",
			Context: map[string]string{"id": marker.ID},
		})
	}

	if marker.Type == model.MarkerNotary {
		parties = finalizeNotary(parties)
		record.Layout = model.LayoutSingle
	} else if sideBySide && len(parties) >= 2 {
		record.Layout = model.LayoutSideBySide
		parties = parties[:2]
	} else {
		record.Layout = model.LayoutSingle
	}

	record.Parties = parties
	return record, warnings
}

func looksLikeSideBySide(raw string) bool {
	if len(signatureLineRun.FindAllStringIndex(raw, -1)) >= 2 {
		return true
	}
	if len(shortUnderlineRun.FindAllStringIndex(raw, -1)) >= 2 {
		return true
	}
	return bigGapPattern.MatchString(raw) && strings.TrimSpace(raw) != ""
}

// applySplitLine divides a side-by-side content line on its first wide
// gap and feeds each half to the corresponding column.
func applySplitLine(raw string, left, right **model.SignatureParty, markerType model.MarkerType) {
	loc := bigGapPattern.FindStringIndex(raw)
	if loc == nil {
		return
	}
	leftHalf := strings.TrimSpace(raw[:loc[0]])
	rightHalf := strings.TrimSpace(raw[loc[1]:])
	noFlush := func() {}
	if leftHalf != "" {
		applyContentLine(leftHalf, left, noFlush, markerType)
	}
	if rightHalf != "" {
		applyContentLine(rightHalf, right, noFlush, markerType)
	}
}

// applyContentLine interprets one (possibly half-of-a-split) content
// line against the current party, starting a new party on a role
// header. flush is invoked immediately before a new party replaces
// *current, so the caller can commit the outgoing party (single-column
// mode); side-by-side columns pass a no-op since each column holds at
// most one party for the life of the block.
func applyContentLine(trimmed string, current **model.SignatureParty, flush func(), markerType model.MarkerType) {
	if m := roleHeaderPattern.FindStringSubmatch(trimmed); m != nil {
		role := strings.TrimSpace(m[1])
		if model.IsPartyRole(role) {
			flush()
			*current = &model.SignatureParty{Role: role}
			return
		}
	}

	if *current == nil {
		*current = &model.SignatureParty{}
	}
	p := *current

	if signatureLineRun.MatchString(trimmed) {
		p.LineType = model.LineTypeSignature
		return
	}
	if markerType == model.MarkerInitial && shortUnderlineRun.MatchString(trimmed) {
		p.LineType = model.LineTypeInitial
		return
	}

	if m := labelField.FindStringSubmatch(trimmed); m != nil {
		field := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		switch {
		case field == "name" || strings.HasPrefix(field, "print"):
			p.Name = value
		case field == "by":
			p.Name = value
		case field == "title":
			p.Title = value
		case field == "company":
			p.Company = value
		case field == "date":
			if p.Date == "" {
				p.Date = value
			}
		}
		return
	}

	if m := stateOf.FindStringSubmatch(trimmed); m != nil {
		p.NotaryState = strings.TrimSpace(m[1])
		return
	}
	if m := countyOf.FindStringSubmatch(trimmed); m != nil {
		p.NotaryCounty = strings.TrimSpace(m[1])
		return
	}
	if m := commissionExpiresRE.FindStringSubmatch(trimmed); m != nil {
		p.CommissionExpires = strings.TrimSpace(m[1])
		return
	}
	if m := commissionNumberRE.FindStringSubmatch(trimmed); m != nil {
		p.CommissionNumber = strings.TrimSpace(m[1])
		return
	}
}

// finalizeNotary collapses any parsed parties into the single
// "NOTARY PUBLIC" party the notary-block invariant requires (spec §3).
func finalizeNotary(parties []model.SignatureParty) []model.SignatureParty {
	if len(parties) == 0 {
		return []model.SignatureParty{{Role: "NOTARY PUBLIC"}}
	}
	merged := parties[0]
	for _, p := range parties[1:] {
		if merged.NotaryState == "" {
			merged.NotaryState = p.NotaryState
		}
		if merged.NotaryCounty == "" {
			merged.NotaryCounty = p.NotaryCounty
		}
		if merged.CommissionExpires == "" {
			merged.CommissionExpires = p.CommissionExpires
		}
		if merged.CommissionNumber == "" {
			merged.CommissionNumber = p.CommissionNumber
		}
		if merged.Name == "" {
			merged.Name = p.Name
		}
	}
	merged.Role = "NOTARY PUBLIC"
	return []model.SignatureParty{merged}
}

func groupKeyOf(id string) string {
	if idx := strings.IndexByte(id, '-'); idx >= 0 {
		return id[:idx]
	}
	return id
}

// positionOrdinal returns the numeric suffix of id, if any, used as a
// stable-sort hint across markers sharing a group (spec §6).
func positionOrdinal(id string) (int, bool) {
	idx := strings.LastIndexByte(id, '-')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
