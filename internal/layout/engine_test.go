package layout

import (
	"testing"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

func area(height float64) model.Area {
	return model.Area{Width: 468, Height: height}
}

func textBlock(height float64, lines int) model.Block {
	ls := make([]string, lines)
	for i := range ls {
		ls[i] = "line"
	}
	return model.Block{Kind: model.BlockText, Height: height, Breakable: true, Lines: ls}
}

func TestLayoutSinglePageFit(t *testing.T) {
	blocks := []model.Block{textBlock(20, 5), textBlock(20, 5)}
	result := Layout(blocks, area(100), Options{})
	if len(result.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(result.Pages))
	}
	if len(result.Pages[0].Blocks) != 2 {
		t.Errorf("expected 2 blocks on the page, got %d", len(result.Pages[0].Blocks))
	}
}

func TestLayoutOverflowsToNewPage(t *testing.T) {
	blocks := []model.Block{textBlock(60, 10), textBlock(60, 10)}
	result := Layout(blocks, area(100), Options{})
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if len(result.Pages[0].Blocks) != 1 || len(result.Pages[1].Blocks) != 1 {
		t.Errorf("expected one block per page, got %d and %d", len(result.Pages[0].Blocks), len(result.Pages[1].Blocks))
	}
}

func TestLayoutKeepWithNextStaysTogether(t *testing.T) {
	filler := textBlock(40, 10)
	heading := model.Block{Kind: model.BlockHeading, Height: 10, KeepWithNext: true}
	next := textBlock(20, 10)

	result := Layout([]model.Block{filler, heading, next}, area(50), Options{})
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if len(result.Pages[0].Blocks) != 1 {
		t.Fatalf("expected filler alone on page 1, got %d blocks", len(result.Pages[0].Blocks))
	}
	if len(result.Pages[1].Blocks) != 2 {
		t.Fatalf("expected heading+next together on page 2, got %d blocks", len(result.Pages[1].Blocks))
	}
	if result.Pages[1].Blocks[0].Kind != model.BlockHeading {
		t.Error("expected heading to lead page 2")
	}
}

func TestLayoutGroupsSignatureBlocksBySharedGroupKey(t *testing.T) {
	s1 := model.Block{Kind: model.BlockSignature, Height: 40, GroupKey: "parties", KeepTogether: true}
	s2 := model.Block{Kind: model.BlockSignature, Height: 40, GroupKey: "parties", KeepTogether: true}
	filler := textBlock(70, 10)

	result := Layout([]model.Block{filler, s1, s2}, area(100), Options{})
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if len(result.Pages[1].Blocks) != 2 {
		t.Fatalf("expected both signature blocks moved together to page 2, got %d blocks", len(result.Pages[1].Blocks))
	}
}

func TestLayoutForcedPlacementWarnsWhenGroupExceedsFullPage(t *testing.T) {
	oversized := model.Block{Kind: model.BlockSignature, Height: 500, GroupKey: "notary", KeepTogether: true}
	result := Layout([]model.Block{oversized}, area(100), Options{})

	if len(result.Pages) != 1 {
		t.Fatalf("expected 1 (forced) page, got %d", len(result.Pages))
	}
	if !result.Pages[0].Forced {
		t.Error("expected the page to be marked Forced")
	}
	found := false
	for _, w := range result.Warnings {
		if w.Code == model.WarnForcedPlacement {
			found = true
		}
	}
	if !found {
		t.Error("expected a forced-placement warning")
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	blocks := []model.Block{textBlock(30, 8), textBlock(30, 8), textBlock(30, 8), textBlock(30, 8)}
	first := Layout(blocks, area(50), Options{})
	second := Layout(blocks, area(50), Options{})

	if len(first.Pages) != len(second.Pages) {
		t.Fatalf("page counts differ between runs: %d vs %d", len(first.Pages), len(second.Pages))
	}
	for i := range first.Pages {
		if len(first.Pages[i].Blocks) != len(second.Pages[i].Blocks) {
			t.Errorf("page %d block counts differ between runs", i)
		}
	}
}

func TestLayoutAreaForPageVariesUsableHeight(t *testing.T) {
	areaForPage := func(pageNumber int) model.Area {
		if pageNumber == 1 {
			return area(30)
		}
		return area(100)
	}
	blocks := []model.Block{textBlock(20, 8), textBlock(80, 8)}
	result := Layout(blocks, area(30), Options{AreaForPage: areaForPage})

	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if result.Pages[1].UsableArea.Height != 100 {
		t.Errorf("expected page 2 to use the taller area, got height %v", result.Pages[1].UsableArea.Height)
	}
}

func TestLayoutRetroactiveReflowMovesTrailingBlock(t *testing.T) {
	a := textBlock(20, 10)
	b := textBlock(20, 10)
	big := model.Block{Kind: model.BlockText, Height: 50, Breakable: true, Lines: make([]string, 10)}

	result := Layout([]model.Block{a, b, big}, area(50), Options{})
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if len(result.Pages[0].Blocks) != 1 {
		t.Fatalf("expected page 1 to retain only the first block, got %d", len(result.Pages[0].Blocks))
	}
	if len(result.Pages[1].Blocks) != 2 {
		t.Fatalf("expected the trailing block to move with the new group to page 2, got %d", len(result.Pages[1].Blocks))
	}
}

func TestOrphanWidowDefaults(t *testing.T) {
	opts := Options{}
	if opts.orphan() != defaultOrphanLines {
		t.Errorf("expected default orphan lines %d, got %d", defaultOrphanLines, opts.orphan())
	}
	if opts.widow() != defaultWidowLines {
		t.Errorf("expected default widow lines %d, got %d", defaultWidowLines, opts.widow())
	}

	custom := Options{OrphanLines: 3, WidowLines: 4}
	if custom.orphan() != 3 || custom.widow() != 4 {
		t.Error("expected custom orphan/widow thresholds to be honored")
	}
}
