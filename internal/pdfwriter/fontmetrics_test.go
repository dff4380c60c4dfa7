package pdfwriter

import (
	"testing"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

func TestGlyphWidthKnownRune(t *testing.T) {
	// 'A' is 0x41 = 65, index 65-32=33 in the Times-Roman AFM table.
	if w := GlyphWidth(model.FontTimesRoman, 'A'); w != 722 {
		t.Errorf("GlyphWidth('A') = %d, want 722", w)
	}
}

func TestGlyphWidthOutOfRangeFallsBackTo500(t *testing.T) {
	if w := GlyphWidth(model.FontTimesRoman, rune(31)); w != 500 {
		t.Errorf("GlyphWidth(31) = %d, want 500", w)
	}
	if w := GlyphWidth(model.FontTimesRoman, rune(9731)); w != 500 {
		t.Errorf("GlyphWidth(snowman) = %d, want 500", w)
	}
}

func TestTextWidthScalesWithFontSize(t *testing.T) {
	at12 := TextWidth(model.FontTimesRoman, 12, "A")
	at24 := TextWidth(model.FontTimesRoman, 24, "A")
	if at24 != at12*2 {
		t.Errorf("expected text width to scale linearly with font size: %v vs %v", at12, at24)
	}
}

func TestWrapTextFitsOnOneLine(t *testing.T) {
	lines := WrapText("short text", model.FontTimesRoman, 12, 1000)
	if len(lines) != 1 || lines[0] != "short text" {
		t.Errorf("expected single unwrapped line, got %+v", lines)
	}
}

func TestWrapTextBreaksOnWordBoundaries(t *testing.T) {
	maxWidth := TextWidth(model.FontTimesRoman, 12, "one two")
	lines := WrapText("one two three", model.FontTimesRoman, 12, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected text to wrap across multiple lines, got %+v", lines)
	}
	for _, l := range lines {
		if TextWidth(model.FontTimesRoman, 12, l) > maxWidth+0.01 {
			t.Errorf("line %q exceeds maxWidth %v", l, maxWidth)
		}
	}
}

func TestWrapTextSplitsOversizedWord(t *testing.T) {
	narrow := TextWidth(model.FontTimesRoman, 12, "abc")
	lines := WrapText("supercalifragilisticexpialidocious", model.FontTimesRoman, 12, narrow)
	if len(lines) < 2 {
		t.Fatalf("expected an oversized word to be split across lines, got %+v", lines)
	}
}

func TestWrapTextEmptyInput(t *testing.T) {
	lines := WrapText("", model.FontTimesRoman, 12, 100)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("expected a single empty line, got %+v", lines)
	}
}
