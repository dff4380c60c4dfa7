package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay-sawant/legalcompose/internal/model"
	"github.com/chinmay-sawant/legalcompose/internal/pipeline"
	"github.com/chinmay-sawant/legalcompose/internal/sink"
)

func newRenderCommand() *cobra.Command {
	var docType string
	var outPath string
	var strict bool
	var title, author string
	var pageNumberFormat string

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a Markdown-plus-marker document into a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefault()

			dt, err := model.ParseDocumentType(docType)
			if err != nil {
				return err
			}

			lines, err := readLines(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			if outPath == "" {
				if args[0] == "-" {
					outPath = "stdin.pdf"
				} else {
					outPath = args[0] + ".pdf"
				}
			}
			out, err := sink.NewFile(outPath)
			if err != nil {
				return fmt.Errorf("opening output file: %w", err)
			}

			pageFormat := cfg.PageNumberFormatModel()
			if cmd.Flags().Changed("format") {
				kind, err := parsePageNumberFormatKind(pageNumberFormat)
				if err != nil {
					return err
				}
				pageFormat.Format = kind
			}

			colorize := !color.NoColor
			opts := model.Options{
				Strict:              strict || cfg.Strict,
				PageNumberFormat:    pageFormat,
				FormattingOverrides: cfg.FormattingOverridesModel(),
				Metadata:            model.Metadata{Title: title, Author: author},
				Progress: func(ev model.ProgressEvent) {
					printMilestone(ev, colorize)
				},
			}

			result, err := pipeline.Compose(lines, dt, out, opts)
			if err != nil {
				return err
			}

			summarize(result, outPath, colorize)
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "document type (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output PDF path (default: <input>.pdf)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of warn on oversized signature blocks")
	cmd.Flags().StringVar(&title, "title", "", "PDF metadata title")
	cmd.Flags().StringVar(&author, "author", "", "PDF metadata author")
	cmd.Flags().StringVar(&pageNumberFormat, "format", "numeric", "page number format: numeric, roman, or alpha")
	cmd.MarkFlagRequired("type")

	return cmd
}

func parsePageNumberFormatKind(s string) (model.PageNumberFormatKind, error) {
	switch s {
	case "numeric":
		return model.PageNumberNumeric, nil
	case "roman":
		return model.PageNumberRoman, nil
	case "alpha":
		return model.PageNumberAlpha, nil
	default:
		return "", fmt.Errorf("unknown --format %q (want numeric, roman, or alpha)", s)
	}
}

// readLines reads newline-delimited input from path, or from stdin when
// path is "-" (SPEC_FULL.md's CLI invocation surface accepts file or
// stdin input).
func readLines(path string) ([]string, error) {
	if path == "-" {
		return scanLines(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func printMilestone(ev model.ProgressEvent, colorize bool) {
	line := fmt.Sprintf("[%s]", ev.Milestone)
	switch ev.Milestone {
	case model.MilestoneParsingSignatures:
		if ev.SignatureCount > 0 {
			line += fmt.Sprintf(" %d signature block(s)", ev.SignatureCount)
		}
	case model.MilestoneComputingLayout:
		if ev.PageCount > 0 {
			line += fmt.Sprintf(" %d page(s)", ev.PageCount)
		}
	case model.MilestoneWritingPage:
		line += fmt.Sprintf(" %d/%d", ev.Page, ev.TotalPages)
	}
	if colorize {
		color.New(color.FgCyan).Println(line)
		return
	}
	fmt.Println(line)
}

func summarize(result model.Result, outPath string, colorize bool) {
	line := fmt.Sprintf("wrote %s (%d bytes, %d pages, %d signature blocks, %d warnings)",
		outPath, result.ByteCount, result.PageCount, result.SignatureBlockCount, len(result.Warnings))
	if colorize {
		color.New(color.FgGreen, color.Bold).Println(line)
	} else {
		fmt.Println(line)
	}
	for _, w := range result.Warnings {
		if colorize {
			color.New(color.FgYellow).Printf("warning: %s: %s\n", w.Code, w.Message)
		} else {
			fmt.Printf("warning: %s: %s\n", w.Code, w.Message)
		}
	}
}
