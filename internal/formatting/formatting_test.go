package formatting

import (
	"testing"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

func TestCalculateLineHeight(t *testing.T) {
	cases := []struct {
		fontSize float64
		spacing  model.LineSpacing
		want     float64
	}{
		{12, model.SpacingSingle, 14.4},
		{12, model.SpacingOneHalf, 20.4},
		{12, model.SpacingDouble, 26.4},
	}
	for _, c := range cases {
		if got := CalculateLineHeight(c.fontSize, c.spacing); got != c.want {
			t.Errorf("CalculateLineHeight(%v, %v) = %v, want %v", c.fontSize, c.spacing, got, c.want)
		}
	}
}

func TestSpacingMultipliers(t *testing.T) {
	rules := model.FormattingRules{ParagraphSpacing: 10}
	if got := ParagraphSpacing(rules); got != 10 {
		t.Errorf("ParagraphSpacing = %v, want 10", got)
	}
	if got := SectionSpacing(rules); got != 15 {
		t.Errorf("SectionSpacing = %v, want 15", got)
	}
	if got := ListSpacing(rules); got != 5 {
		t.Errorf("ListSpacing = %v, want 5", got)
	}
	if got := TitleSpacing(rules); got != 20 {
		t.Errorf("TitleSpacing = %v, want 20", got)
	}
}

func TestRulesForAppliesBaseDefaults(t *testing.T) {
	rules := RulesFor(model.NDAIPSpecific, model.FormattingOverride{})
	if rules.FontSize != 11 {
		t.Errorf("expected base font size 11 for nda-ip-specific, got %v", rules.FontSize)
	}
	if rules.PageNumberPosition != model.PageNumberBottomCenter {
		t.Errorf("unexpected page number position: %v", rules.PageNumberPosition)
	}
}

func TestRulesForOverrideDoesNotMutateBaseTable(t *testing.T) {
	fontSize := 99.0
	override := model.FormattingOverride{FontSize: &fontSize}

	overridden := RulesFor(model.NDAIPSpecific, override)
	if overridden.FontSize != 99 {
		t.Fatalf("expected override applied, got %v", overridden.FontSize)
	}

	again := RulesFor(model.NDAIPSpecific, model.FormattingOverride{})
	if again.FontSize != 11 {
		t.Errorf("base rules table was mutated by a prior override: got font size %v", again.FontSize)
	}
}

func TestRulesForMarginOverride(t *testing.T) {
	margins := model.Margins{Top: 1, Bottom: 2, Left: 3, Right: 4}
	overridden := RulesFor(model.ProvisionalPatentApplication, model.FormattingOverride{Margins: &margins})
	if overridden.Margins != margins {
		t.Errorf("expected margins override applied, got %+v", overridden.Margins)
	}
}

func TestUsableAreaForHonorsFirstPageTopMargin(t *testing.T) {
	rules := RulesFor(model.OfficeActionResponse, model.FormattingOverride{})

	firstPage := UsableAreaFor(rules, 1)
	wantFirstHeight := 792.0 - 108 - 72
	if firstPage.Height != wantFirstHeight {
		t.Errorf("page 1 usable height = %v, want %v", firstPage.Height, wantFirstHeight)
	}

	secondPage := UsableAreaFor(rules, 2)
	wantSecondHeight := 792.0 - 72 - 72
	if secondPage.Height != wantSecondHeight {
		t.Errorf("page 2 usable height = %v, want %v", secondPage.Height, wantSecondHeight)
	}
}

func TestUsableAreaForWidth(t *testing.T) {
	rules := RulesFor(model.PatentAssignmentAgreement, model.FormattingOverride{})
	area := UsableAreaFor(rules, 1)
	want := 612.0 - 90 - 90
	if area.Width != want {
		t.Errorf("usable width = %v, want %v", area.Width, want)
	}
}

func TestPageSizeIsUSLetter(t *testing.T) {
	size := PageSize()
	if size.Width != 612 || size.Height != 792 {
		t.Errorf("unexpected page size: %+v", size)
	}
}
