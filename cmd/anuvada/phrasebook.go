package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padakosha/anuvada/internal/phrasebook"
)

func newPhrasebookCommand() *cobra.Command {
	var toPDF bool

	command := cobra.Command{
		Use:   "phrasebook",
		Short: "Export the dictionary as a printable phrasebook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			resolver, err := newResolver(cfg)
			if err != nil {
				return err
			}

			markdownPath, err := phrasebook.Export(cfg.Outputs.PhrasebookDirectory, resolver.Entries())
			if err != nil {
				return fmt.Errorf("phrasebook.Export() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", markdownPath)

			if toPDF {
				pdfPath, err := phrasebook.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("phrasebook.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&toPDF, "pdf", false, "Also convert the phrasebook to PDF")
	return &command
}
