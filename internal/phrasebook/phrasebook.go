// Package phrasebook renders the dictionary as a printable document.
package phrasebook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/padakosha/anuvada/internal/dictionary"
)

// WriteMarkdown renders entries as a Markdown phrasebook table.
func WriteMarkdown(w io.Writer, entries []dictionary.Entry) error {
	if _, err := fmt.Fprintln(w, "# English → Kannada Phrasebook"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	if _, err := fmt.Fprintf(w, "\n%d entries.\n\n", len(entries)); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	if _, err := fmt.Fprintln(w, "| English | Kannada |"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	if _, err := fmt.Fprintln(w, "|---------|---------|"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "| %s | %s |\n", entry.English, entry.Kannada); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}

// Export writes the Markdown phrasebook into directory and returns its path.
func Export(directory string, entries []dictionary.Entry) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	markdownPath := filepath.Join(directory, "phrasebook.md")
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := WriteMarkdown(file, entries); err != nil {
		return "", fmt.Errorf("WriteMarkdown() > %w", err)
	}
	return markdownPath, nil
}

// ConvertMarkdownToPDF converts a Markdown phrasebook to PDF next to the
// source file and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
