// Package pipeline implements the Pipeline (spec §4.8): it drives
// MarkdownRecognizer/SignatureMarkerParser, DocumentFormatter,
// BlockBuilder, LayoutEngine, and PdfWriter in order, publishing
// progress milestones synchronously, checking for cooperative
// cancellation at the documented checkpoints, and producing the public
// result descriptor.
//
// Grounded on the teacher's handler-level orchestration in
// internal/handlers/handlers.go (validate input, call into internal/pdf,
// stream the result), generalized from one HTTP-request shot to a
// host-agnostic, cancellable, progress-reporting invocation.
package pipeline

import (
	"time"

	"github.com/chinmay-sawant/legalcompose/internal/blockbuilder"
	"github.com/chinmay-sawant/legalcompose/internal/errs"
	"github.com/chinmay-sawant/legalcompose/internal/formatting"
	"github.com/chinmay-sawant/legalcompose/internal/layout"
	"github.com/chinmay-sawant/legalcompose/internal/model"
	"github.com/chinmay-sawant/legalcompose/internal/pdfwriter"
	"github.com/chinmay-sawant/legalcompose/internal/signature"
	"github.com/chinmay-sawant/legalcompose/internal/sink"
)

// Compose runs the full composition pipeline over lines for document
// type dt, writing the resulting PDF to out, and returns the public
// result descriptor (spec §4.8/§6).
func Compose(lines []string, dt model.DocumentType, out sink.Sink, opts model.Options) (model.Result, error) {
	progress := opts.Progress
	emit := func(ev model.ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneInitializing})

	if !dt.Valid() {
		return model.Result{}, errs.ErrInvalidDocumentType
	}
	if len(lines) == 0 {
		return model.Result{}, errs.ErrEmptyContent
	}

	generatedAt := time.Now()
	if opts.GeneratedAt != nil {
		generatedAt = *opts.GeneratedAt
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneLoadingRules})
	override := opts.FormattingOverrides[dt]
	rules := formatting.RulesFor(dt, override)
	pageFormat := opts.PageNumberFormat
	if pageFormat.Format == "" {
		pageFormat = model.DefaultPageNumberFormat()
	}

	if cancelled(opts.Cancel) {
		return cancelledResult(dt, generatedAt), nil
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneParsingSignatures})
	parsed := signature.Parse(lines)
	warnings := append([]model.Warning(nil), parsed.Warnings...)
	warnings = append(warnings, missingMetadataWarnings(opts.Metadata)...)
	emit(model.ProgressEvent{Milestone: model.MilestoneParsingSignatures, SignatureCount: len(parsed.SignatureBlocks)})

	if cancelled(opts.Cancel) {
		return cancelledResult(dt, generatedAt), nil
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneBuildingBlocks})
	blocks := blockbuilder.Build(parsed, rules)

	emit(model.ProgressEvent{Milestone: model.MilestoneComputingLayout})
	layoutOpts := layout.Options{
		Strict: opts.Strict,
		AreaForPage: func(pageNumber int) model.Area {
			return formatting.UsableAreaFor(rules, pageNumber)
		},
	}
	firstPageArea := formatting.UsableAreaFor(rules, 1)
	laidOut := layout.Layout(blocks, firstPageArea, layoutOpts)
	warnings = append(warnings, laidOut.Warnings...)

	if opts.Strict {
		for _, w := range laidOut.Warnings {
			if w.Code == model.WarnForcedPlacement {
				return model.Result{}, errs.New(errs.CodeSignatureOversized, "signature block exceeds a full page under strict mode")
			}
		}
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneComputingLayout, PageCount: len(laidOut.Pages)})

	if cancelled(opts.Cancel) {
		return cancelledResult(dt, generatedAt), nil
	}

	doc := pdfwriter.NewDocument(opts.Metadata, generatedAt)
	pageSize := formatting.PageSize()
	total := len(laidOut.Pages)
	for _, page := range laidOut.Pages {
		if cancelled(opts.Cancel) {
			out.Abort()
			return cancelledResult(dt, generatedAt), nil
		}
		pageWarnings := doc.AddPage(page, rules, pageSize, pageFormat)
		warnings = append(warnings, pageWarnings...)
		emit(model.ProgressEvent{Milestone: model.MilestoneWritingPage, Page: page.Number, TotalPages: total})
	}

	emit(model.ProgressEvent{Milestone: model.MilestoneFinalizing})
	artifact, err := doc.Write(out)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		ByteCount:           artifact.ByteCount,
		PageCount:           len(laidOut.Pages),
		SignatureBlockCount: len(parsed.SignatureBlocks),
		Warnings:            warnings,
		DocumentType:        dt,
		GeneratedAt:         generatedAt,
	}, nil
}

// missingMetadataWarnings reports the optional PDF Info-dictionary
// fields (spec §6's `metadata` option) the caller left unset, as
// non-fatal warnings (spec §7: "missing optional metadata").
func missingMetadataWarnings(meta model.Metadata) []model.Warning {
	var warnings []model.Warning
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"title", meta.Title == ""},
		{"author", meta.Author == ""},
		{"subject", meta.Subject == ""},
	} {
		if f.empty {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnMissingMetadata,
				Message: "optional PDF metadata field was not supplied",
				Context: map[string]string{"field": f.name},
			})
		}
	}
	return warnings
}

func cancelled(c <-chan struct{}) bool {
	if c == nil {
		return false
	}
	select {
	case <-c:
		return true
	default:
		return false
	}
}

func cancelledResult(dt model.DocumentType, generatedAt time.Time) model.Result {
	return model.Result{DocumentType: dt, GeneratedAt: generatedAt, Cancelled: true}
}
