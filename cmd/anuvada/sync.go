package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padakosha/anuvada/internal/database"
	"github.com/padakosha/anuvada/internal/datasync"
	"github.com/padakosha/anuvada/internal/dictionary"
)

func newSyncCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "sync",
		Short: "Synchronize the dictionary with the database",
	}

	var dryRun bool
	var updateExisting bool
	var entriesFile string
	importCommand := cobra.Command{
		Use:   "import",
		Short: "Import dictionary entries into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := dictionary.Load()
			if err != nil {
				return fmt.Errorf("dictionary.Load() > %w", err)
			}
			if entriesFile != "" {
				extra, err := dictionary.LoadFile(entriesFile)
				if err != nil {
					return fmt.Errorf("dictionary.LoadFile() > %w", err)
				}
				entries = append(entries, extra...)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(dictionary.NewDBEntryRepository(db), cmd.OutOrStdout())
			if _, err := importer.ImportEntries(cmd.Context(), entries, datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}); err != nil {
				return fmt.Errorf("importer.ImportEntries() > %w", err)
			}
			return nil
		},
	}
	importCommand.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing")
	importCommand.Flags().BoolVar(&updateExisting, "update-existing", false, "Overwrite entries that changed")
	importCommand.Flags().StringVar(&entriesFile, "file", "", "Additional YAML entries file to import")

	var outputFile string
	exportCommand := cobra.Command{
		Use:   "export",
		Short: "Export database entries to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			exporter := datasync.NewExporter(dictionary.NewDBEntryRepository(db))
			count, err := exporter.ExportEntries(cmd.Context(), outputFile)
			if err != nil {
				return fmt.Errorf("exporter.ExportEntries() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to %s\n", count, outputFile)
			return nil
		},
	}
	exportCommand.Flags().StringVar(&outputFile, "output", "entries.yml", "Output YAML file path")

	rootCommand.AddCommand(&importCommand, &exportCommand)
	return &rootCommand
}
