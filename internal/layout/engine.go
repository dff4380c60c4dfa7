// Package layout implements the LayoutEngine (spec §4.6): deterministic,
// single-threaded pagination of a block sequence into pages, honoring
// keep-with-next, keep-together/signature atomicity, orphan/widow
// control, and group-together placement, with a retroactive-reflow
// escape hatch and a final forced-placement fallback.
//
// Grounded on the teacher's PageManager (internal/pdf/pagemanager.go):
// the same running-remaining-height bookkeeping and "does this block
// fit, else start a new page" loop, generalized from the teacher's flat
// table-row stream to the spec's five block kinds and its
// keep-together/orphan-widow rules.
package layout

import (
	"github.com/chinmay-sawant/legalcompose/internal/model"
)

const (
	defaultOrphanLines = 2
	defaultWidowLines  = 2
)

// Options controls non-default layout behavior (spec §4.6's
// "configurable orphan/widow thresholds").
type Options struct {
	OrphanLines int
	WidowLines  int
	Strict      bool // spec §7: strict mode turns an oversized signature block into a fatal error instead of a warning

	// AreaForPage returns the usable area for a given 1-based page
	// number, letting the first page differ from the rest (spec §4.4's
	// first-page top-margin policy). If nil, every page uses the area
	// passed to Layout.
	AreaForPage func(pageNumber int) model.Area
}

func (o Options) orphan() int {
	if o.OrphanLines > 0 {
		return o.OrphanLines
	}
	return defaultOrphanLines
}

func (o Options) widow() int {
	if o.WidowLines > 0 {
		return o.WidowLines
	}
	return defaultWidowLines
}

// Result carries the paginated output plus any warnings layout itself
// raised (forced-placement escapes).
type Result struct {
	Pages    []model.Page
	Warnings []model.Warning
}

type engine struct {
	area     model.Area
	opts     Options
	pages    []model.Page
	warnings []model.Warning
	current  model.Page
}

// Layout paginates blocks into pages sized to area, which the caller
// (pipeline) must already have resolved per document type and page
// number 1 (spec §4.4's first-page top-margin policy means later pages
// can differ in usable height; opts.AreaForPage, when set, supplies the
// area of every new page within this single call).
func Layout(blocks []model.Block, area model.Area, opts Options) Result {
	e := &engine{area: area, opts: opts}
	e.newPage(area)

	groups := groupBlocks(blocks)

	for i, group := range groups {
		e.placeGroup(group, groups, i)
	}

	e.closeCurrentPage()
	return Result{Pages: e.pages, Warnings: e.warnings}
}

// blockGroup is a maximal run of blocks that must be kept together on
// one page: either a single ordinary block, a heading bonded to its
// immediate next block (keep-with-next), or a run of signature blocks
// sharing a non-empty GroupKey (group-together, spec §4.6 rule 5).
type blockGroup struct {
	blocks []model.Block
}

func (g blockGroup) height() float64 {
	var h float64
	for _, b := range g.blocks {
		h += b.Height
	}
	return h
}

func groupBlocks(blocks []model.Block) []blockGroup {
	var groups []blockGroup
	i := 0
	for i < len(blocks) {
		b := blocks[i]

		if b.Kind == model.BlockSignature && b.GroupKey != "" {
			j := i + 1
			run := []model.Block{b}
			for j < len(blocks) && blocks[j].Kind == model.BlockSignature && blocks[j].GroupKey == b.GroupKey {
				run = append(run, blocks[j])
				j++
			}
			groups = append(groups, blockGroup{blocks: run})
			i = j
			continue
		}

		if b.KeepWithNext && i+1 < len(blocks) {
			groups = append(groups, blockGroup{blocks: []model.Block{b, blocks[i+1]}})
			i += 2
			continue
		}

		groups = append(groups, blockGroup{blocks: []model.Block{b}})
		i++
	}
	return groups
}

func (e *engine) newPage(area model.Area) {
	number := len(e.pages) + 1
	if e.opts.AreaForPage != nil {
		area = e.opts.AreaForPage(number)
	}
	e.current = model.Page{
		Number:          number,
		UsableArea:      area,
		RemainingHeight: area.Height,
	}
}

func (e *engine) closeCurrentPage() {
	e.pages = append(e.pages, e.current)
}

func (e *engine) startNewPage() {
	e.closeCurrentPage()
	e.newPage(e.area)
}

// placeGroup attempts to place a group on the current page, reflowing
// to a new page when it does not fit, and forcing placement when the
// group is taller than an entire empty page (spec §4.6 rule 6).
func (e *engine) placeGroup(group blockGroup, all []blockGroup, idx int) {
	h := group.height()

	if h <= e.current.RemainingHeight {
		e.appendGroup(group)
		return
	}

	if len(e.current.Blocks) > 0 {
		if moved := e.tryRetroactiveReflow(group); moved {
			return
		}
		e.startNewPage()
	}

	if h <= e.current.RemainingHeight {
		e.appendGroup(group)
		return
	}

	// A run of grouped signature blocks that cannot share even an empty
	// page is split: each block is placed on its own.
	if len(group.blocks) > 1 && group.blocks[0].Kind == model.BlockSignature {
		for _, b := range group.blocks {
			e.placeGroup(blockGroup{blocks: []model.Block{b}}, all, idx)
		}
		return
	}

	// Forced placement: the group alone exceeds a full empty page.
	// Signature atomicity still holds (the whole group goes on one
	// page together); we simply allow it to overflow and warn.
	e.current.Forced = true
	e.appendGroup(group)
	for _, b := range group.blocks {
		if b.Kind == model.BlockSignature {
			e.warnings = append(e.warnings, model.Warning{
				Code:    model.WarnForcedPlacement,
				Message: "signature block exceeds one full page and was forced onto a single page",
				Context: map[string]string{"groupKey": b.GroupKey},
			})
			break
		}
	}
}

// tryRetroactiveReflow implements spec §4.6 rule 4: when a group does
// not fit, search backward on the current page for the last break
// point that would leave no orphan/widow violation, and move every
// block after that point to the next page along with the group being
// placed. Returns false (caller falls through to a plain new page) when
// no such point exists or the current page holds a single unbreakable
// group.
func (e *engine) tryRetroactiveReflow(group blockGroup) bool {
	if len(e.current.Blocks) < 2 {
		return false
	}

	for cut := len(e.current.Blocks) - 1; cut >= 1; cut-- {
		if !validBreak(e.current.Blocks, cut, e.opts) {
			continue
		}
		trailing := append([]model.Block(nil), e.current.Blocks[cut:]...)
		e.current.Blocks = e.current.Blocks[:cut]
		e.current.RemainingHeight = e.current.UsableArea.Height - sumHeights(e.current.Blocks)

		e.startNewPage()
		for _, b := range trailing {
			e.current.Blocks = append(e.current.Blocks, b)
			e.current.RemainingHeight -= b.Height
		}
		e.appendGroup(group)
		return true
	}
	return false
}

// validBreak reports whether cutting blocks at index cut (blocks before
// cut stay on this page, blocks from cut on move to the next) respects
// the orphan/widow thresholds for any text block adjacent to the cut.
func validBreak(blocks []model.Block, cut int, opts Options) bool {
	if cut > 0 {
		prev := blocks[cut-1]
		if prev.Kind == model.BlockText && len(prev.Lines) < opts.orphan() {
			return false
		}
	}
	if cut < len(blocks) {
		next := blocks[cut]
		if next.Kind == model.BlockText && len(next.Lines) < opts.widow() {
			return false
		}
	}
	return true
}

func sumHeights(blocks []model.Block) float64 {
	var h float64
	for _, b := range blocks {
		h += b.Height
	}
	return h
}

func (e *engine) appendGroup(group blockGroup) {
	for _, b := range group.blocks {
		e.current.Blocks = append(e.current.Blocks, b)
		e.current.RemainingHeight -= b.Height
	}
}
