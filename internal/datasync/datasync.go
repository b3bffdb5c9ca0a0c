// Package datasync provides import/export between dictionary files and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/padakosha/anuvada/internal/dictionary"
)

// ImportResult tracks counts for one import run.
type ImportResult struct {
	New     int
	Updated int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes dictionary entries to the database.
type Importer struct {
	repo   dictionary.EntryRepository
	writer io.Writer
}

// NewImporter creates a new Importer. Progress is reported to writer.
func NewImporter(repo dictionary.EntryRepository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportEntries upserts entries into the database. English keys are
// lowercased so the stored table matches the resolver's lookups.
func (imp *Importer) ImportEntries(ctx context.Context, entries []dictionary.Entry, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	for _, entry := range entries {
		entry.English = strings.ToLower(entry.English)

		existing, err := imp.repo.FindByEnglish(ctx, entry.English)
		if err != nil {
			return nil, fmt.Errorf("repo.FindByEnglish(%s) > %w", entry.English, err)
		}

		switch {
		case existing == nil:
			result.New++
			if opts.DryRun {
				fmt.Fprintf(imp.writer, "would create %q\n", entry.English)
				continue
			}
			if err := imp.repo.Upsert(ctx, entry); err != nil {
				return nil, fmt.Errorf("repo.Upsert(%s) > %w", entry.English, err)
			}
		case existing.Kannada != entry.Kannada && opts.UpdateExisting:
			result.Updated++
			if opts.DryRun {
				fmt.Fprintf(imp.writer, "would update %q\n", entry.English)
				continue
			}
			if err := imp.repo.Upsert(ctx, entry); err != nil {
				return nil, fmt.Errorf("repo.Upsert(%s) > %w", entry.English, err)
			}
		default:
			result.Skipped++
		}
	}

	fmt.Fprintf(imp.writer, "dictionary entries: %d new, %d updated, %d skipped\n",
		result.New, result.Updated, result.Skipped)
	return &result, nil
}

// Exporter reads dictionary entries from the database into a YAML file.
type Exporter struct {
	repo dictionary.EntryRepository
}

// NewExporter creates a new Exporter.
func NewExporter(repo dictionary.EntryRepository) *Exporter {
	return &Exporter{repo: repo}
}

// ExportEntries writes every stored entry to path as YAML and returns the
// number of exported entries.
func (exp *Exporter) ExportEntries(ctx context.Context, path string) (int, error) {
	entries, err := exp.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.FindAll() > %w", err)
	}

	contents, err := yaml.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return 0, fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return len(entries), nil
}
