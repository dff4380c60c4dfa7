// Command compose is the CLI front end for the composition pipeline
// (SPEC_FULL.md A.3): a Cobra root command with a `render` subcommand
// that reads a Markdown-plus-marker document from a file, composes it
// per a document-type flag, and writes the PDF to disk.
//
// Grounded on the Cobra root/subcommand convention attested across the
// retrieved pack's manifests (verustcode-verustcode, moisespsena-go-md2latex);
// progress output is colorized with fatih/color, gated on whether
// stdout is a terminal, matching the same manifests' dependency on
// fatih/color for CLI UX.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chinmay-sawant/legalcompose/internal/config"
	"github.com/chinmay-sawant/legalcompose/internal/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "compose",
		Short: "Compose legal documents into formatted PDFs",
	}

	root.AddCommand(newRenderCommand())
	return root
}

func loadConfigOrDefault() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
	return cfg
}
