package blockbuilder

import (
	"testing"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

func rules() model.FormattingRules {
	return model.FormattingRules{
		FontSize:         12,
		Font:             model.FontTimesRoman,
		LineSpacing:      model.SpacingSingle,
		ParagraphSpacing: 12,
	}
}

func TestBuildParagraphSplitOnBlankLine(t *testing.T) {
	doc := model.ParsedDocument{
		CleanLines: []model.CleanLine{
			{Text: "First paragraph line one."},
			{Text: "First paragraph line two."},
			{Blank: true},
			{Text: "Second paragraph."},
		},
	}
	blocks := Build(doc, rules())

	var textBlocks []model.Block
	for _, b := range blocks {
		if b.Kind == model.BlockText {
			textBlocks = append(textBlocks, b)
		}
	}
	if len(textBlocks) != 2 {
		t.Fatalf("expected 2 text blocks, got %d", len(textBlocks))
	}
	if len(textBlocks[0].Lines) != 2 {
		t.Errorf("expected first paragraph to have 2 lines, got %d", len(textBlocks[0].Lines))
	}
	if len(textBlocks[1].Lines) != 1 {
		t.Errorf("expected second paragraph to have 1 line, got %d", len(textBlocks[1].Lines))
	}
}

func TestBuildHeadingIsKeptWithNext(t *testing.T) {
	doc := model.ParsedDocument{
		CleanLines: []model.CleanLine{
			{Kind: model.LineHeading, HeadingLevel: 1, Text: "Title"},
		},
	}
	blocks := Build(doc, rules())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != model.BlockHeading {
		t.Fatalf("expected heading block, got %v", blocks[0].Kind)
	}
	if !blocks[0].KeepWithNext {
		t.Error("heading blocks must set KeepWithNext")
	}
	if blocks[0].Breakable {
		t.Error("heading blocks must not be breakable")
	}
}

func TestBuildRuleBlock(t *testing.T) {
	doc := model.ParsedDocument{
		CleanLines: []model.CleanLine{
			{Kind: model.LineRule},
		},
	}
	blocks := Build(doc, rules())
	if len(blocks) != 1 || blocks[0].Kind != model.BlockRule {
		t.Fatalf("expected a single rule block, got %+v", blocks)
	}
}

func TestBuildAppendsOneSignatureBlockPerRecord(t *testing.T) {
	doc := model.ParsedDocument{
		SignatureBlocks: []model.SignatureBlockRecord{
			{GroupKey: "assignor", Parties: []model.SignatureParty{{Name: "Jane Doe"}}},
			{GroupKey: "assignee", Parties: []model.SignatureParty{{Name: "John Roe"}}},
		},
	}
	blocks := Build(doc, rules())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 signature blocks, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.Kind != model.BlockSignature {
			t.Errorf("expected BlockSignature, got %v", b.Kind)
		}
		if !b.KeepTogether || b.Breakable {
			t.Error("signature blocks must be keep-together and non-breakable")
		}
		if b.Record == nil {
			t.Error("signature block must carry a record pointer")
		}
	}
}

func TestMeasureSignatureHeightSingleParty(t *testing.T) {
	record := model.SignatureBlockRecord{
		Parties: []model.SignatureParty{{Name: "Jane Doe", Title: "CEO"}},
	}
	want := signatureLineSlot + fieldLineHeight*2
	if got := MeasureSignatureHeight(record); got != want {
		t.Errorf("MeasureSignatureHeight = %v, want %v", got, want)
	}
}

func TestMeasureSignatureHeightMultiplePartiesAddsPadding(t *testing.T) {
	record := model.SignatureBlockRecord{
		Parties: []model.SignatureParty{
			{Name: "Jane Doe"},
			{Name: "John Roe"},
		},
	}
	want := (signatureLineSlot+fieldLineHeight)*2 + interPartyPadding
	if got := MeasureSignatureHeight(record); got != want {
		t.Errorf("MeasureSignatureHeight = %v, want %v", got, want)
	}
}

func TestMeasureSignatureHeightSideBySideUsesMax(t *testing.T) {
	record := model.SignatureBlockRecord{
		Layout: model.LayoutSideBySide,
		Parties: []model.SignatureParty{
			{Name: "Alice Smith"},
			{Name: "Bob Jones", Title: "Manager"},
		},
	}
	left := signatureLineSlot + fieldLineHeight
	right := signatureLineSlot + fieldLineHeight*2
	want := right
	if left > right {
		want = left
	}
	if got := MeasureSignatureHeight(record); got != want {
		t.Errorf("MeasureSignatureHeight = %v, want %v", got, want)
	}
}

func TestMeasureSignatureHeightNotaryAddsFixedExtra(t *testing.T) {
	record := model.SignatureBlockRecord{
		NotaryRequired: true,
		Parties:        []model.SignatureParty{{Name: "Notary Public"}},
	}
	base := signatureLineSlot + fieldLineHeight
	extra := acknowledgementLines*acknowledgementLine + notarySignatureSlot + commissionLineCount*fieldLineHeight + sealPlaceholderHeight
	want := base + extra
	if got := MeasureSignatureHeight(record); got != want {
		t.Errorf("MeasureSignatureHeight = %v, want %v", got, want)
	}
}

func TestMeasureSignatureHeightEmptyPartiesUsesSlot(t *testing.T) {
	record := model.SignatureBlockRecord{}
	if got := MeasureSignatureHeight(record); got != signatureLineSlot {
		t.Errorf("MeasureSignatureHeight = %v, want %v", got, signatureLineSlot)
	}
}

func TestHeadingFontSizeAndBoldTable(t *testing.T) {
	if headingFontSize(1) != 16 || !headingBold(1) {
		t.Error("level 1 heading should be 16pt bold")
	}
	if headingFontSize(4) != 12 || headingBold(4) {
		t.Error("level 4 heading should be 12pt non-bold")
	}
}
