// Package markdown implements the MarkdownRecognizer (spec §4.2): a
// pure, restartable per-line classifier for the documented Markdown
// subset (H1-H6 headings, horizontal rules, prose) plus inline
// emphasis stripping.
//
// No third-party Markdown library is used here; see DESIGN.md for why
// a full CommonMark parser (blackfriday, gomarkdown) is the wrong tool
// for a single-line classifier with bespoke signature-block break
// rules layered on top in package signature.
package markdown

import (
	"regexp"
	"strings"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})[ \t]+(\S.*)$`)
	rulePattern    = regexp.MustCompile(`^[ \t]*(?:-(?:[ \t]*-){2,}|_(?:[ \t]*_){2,}|\*(?:[ \t]*\*){2,})[ \t]*$`)
	emphasisRun    = regexp.MustCompile(`(\*{1,3}|_{1,3})(\S(?:.*?\S)?)(\*{1,3}|_{1,3})`)
)

// Classify inspects a single source line and returns its kind, the
// heading level (1-6, zero otherwise), and the text to carry forward
// (delimiters stripped for headings/prose, untouched for rules).
func Classify(line string) (kind model.LineKind, headingLevel int, text string) {
	trimmed := strings.TrimRight(line, "\r")

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		level := len(m[1])
		return model.LineHeading, level, StripEmphasis(strings.TrimSpace(m[2]))
	}

	if rulePattern.MatchString(trimmed) {
		return model.LineRule, 0, ""
	}

	return model.LineProse, 0, StripEmphasis(trimmed)
}

// StripEmphasis removes balanced emphasis delimiters (one, two, or
// three asterisks/underscores around non-whitespace) without rendering
// bold/italic state, per spec §4.2's "strip rather than emit literal
// delimiters" fallback. Mismatched or unbalanced delimiters are left as
// literal characters.
func StripEmphasis(s string) string {
	for {
		loc := emphasisRun.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		open := s[loc[2]:loc[3]]
		closeDelim := s[loc[6]:loc[7]]
		if open != closeDelim {
			// Not a balanced pair; stop rather than loop forever on a
			// false match (e.g. "**a*").
			return s
		}
		inner := s[loc[4]:loc[5]]
		s = s[:loc[0]] + inner + s[loc[1]:]
	}
}

// HeadingFontSize returns the font-size policy for a heading level
// (spec §4.2): H1=16, H2=14, H3-H6=12.
func HeadingFontSize(level int) float64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	default:
		return 12
	}
}

// HeadingBold returns the bold-weight policy for a heading level (spec
// §4.2): H1-H3 bold, H4-H6 normal.
func HeadingBold(level int) bool {
	return level >= 1 && level <= 3
}
