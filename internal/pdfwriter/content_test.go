package pdfwriter

import (
	"strings"
	"testing"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

func TestContentBuilderShowTextOpensAndTracksFont(t *testing.T) {
	used := map[model.Font]bool{}
	cb := newContentBuilder(used)
	cb.showText(model.FontTimesBold, 12, 72, 700, "Hello")
	out := string(cb.finish())

	if !strings.Contains(out, "BT\n") || !strings.Contains(out, "ET\n") {
		t.Errorf("expected balanced BT/ET, got %q", out)
	}
	if !strings.Contains(out, "/F2 12 Tf") {
		t.Errorf("expected font F2 (TimesBold) selected, got %q", out)
	}
	if !used[model.FontTimesBold] {
		t.Error("expected FontTimesBold marked as used")
	}
	if !strings.Contains(out, "(Hello) Tj") {
		t.Errorf("expected text show operator, got %q", out)
	}
}

func TestContentBuilderDoesNotRepeatTfForSameFont(t *testing.T) {
	used := map[model.Font]bool{}
	cb := newContentBuilder(used)
	cb.showText(model.FontTimesRoman, 12, 0, 0, "a")
	cb.showText(model.FontTimesRoman, 12, 0, 10, "b")
	out := string(cb.finish())

	if strings.Count(out, "Tf\n") != 1 {
		t.Errorf("expected exactly one Tf when font/size unchanged, got content: %q", out)
	}
}

func TestContentBuilderSwitchesFontOnChange(t *testing.T) {
	used := map[model.Font]bool{}
	cb := newContentBuilder(used)
	cb.showText(model.FontTimesRoman, 12, 0, 0, "a")
	cb.showText(model.FontTimesBold, 12, 0, 10, "b")
	out := string(cb.finish())

	if strings.Count(out, "Tf\n") != 2 {
		t.Errorf("expected a Tf on font change, got content: %q", out)
	}
}

func TestContentBuilderDrawLineClosesTextAndBalancesQ(t *testing.T) {
	used := map[model.Font]bool{}
	cb := newContentBuilder(used)
	cb.showText(model.FontTimesRoman, 12, 0, 0, "before")
	cb.drawLine(72, 100, 200, 100, 0.75)
	out := string(cb.finish())

	if strings.Count(out, "q\n") != strings.Count(out, "Q\n") {
		t.Errorf("expected balanced q/Q, got %q", out)
	}
	if !strings.Contains(out, "0.75 w") {
		t.Errorf("expected line width operand, got %q", out)
	}
	if !strings.Contains(out, "S\n") {
		t.Errorf("expected stroke operator, got %q", out)
	}
	etIdx := strings.Index(out, "ET\n")
	qIdx := strings.Index(out, "q\n")
	if etIdx == -1 || qIdx == -1 || etIdx > qIdx {
		t.Error("expected the text object to close before the line's graphics state opens")
	}
}

func TestContentBuilderEncodingWarningPropagates(t *testing.T) {
	used := map[model.Font]bool{}
	cb := newContentBuilder(used)
	warned := cb.showText(model.FontTimesRoman, 12, 0, 0, "中文")
	if !warned {
		t.Error("expected an encoding warning for out-of-range runes")
	}
}

func TestTrimFloat(t *testing.T) {
	cases := map[float64]string{
		12.0:  "12",
		0.75:  "0.75",
		100.5: "100.5",
		0.0:   "0",
	}
	for in, want := range cases {
		if got := trimFloat(in); got != want {
			t.Errorf("trimFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestResourceNameMapping(t *testing.T) {
	cases := map[model.Font]string{
		model.FontTimesRoman:      "F1",
		model.FontTimesBold:       "F2",
		model.FontTimesItalic:     "F3",
		model.FontTimesBoldItalic: "F4",
	}
	for font, want := range cases {
		if got := resourceName(font); got != want {
			t.Errorf("resourceName(%v) = %q, want %q", font, got, want)
		}
	}
}
