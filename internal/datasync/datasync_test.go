package datasync

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/padakosha/anuvada/internal/dictionary"
	mock_dictionary "github.com/padakosha/anuvada/internal/mocks/dictionary"
)

func TestImporter_ImportEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []dictionary.Entry
		opts    ImportOptions
		setup   func(repo *mock_dictionary.MockEntryRepository)
		want    *ImportResult
	}{
		{
			name: "new entry is created with a lowercased key",
			entries: []dictionary.Entry{
				{English: "Tree", Kannada: "ಮರ"},
			},
			setup: func(repo *mock_dictionary.MockEntryRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "tree").
					Return(nil, nil)
				repo.EXPECT().
					Upsert(gomock.Any(), dictionary.Entry{English: "tree", Kannada: "ಮರ"}).
					Return(nil)
			},
			want: &ImportResult{New: 1},
		},
		{
			name: "existing identical entry is skipped",
			entries: []dictionary.Entry{
				{English: "hello", Kannada: "ನಮಸ್ಕಾರ"},
			},
			setup: func(repo *mock_dictionary.MockEntryRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "hello").
					Return(&dictionary.Entry{English: "hello", Kannada: "ನಮಸ್ಕಾರ"}, nil)
			},
			want: &ImportResult{Skipped: 1},
		},
		{
			name: "changed entry is skipped without update option",
			entries: []dictionary.Entry{
				{English: "hello", Kannada: "ಹಲೋ"},
			},
			setup: func(repo *mock_dictionary.MockEntryRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "hello").
					Return(&dictionary.Entry{English: "hello", Kannada: "ನಮಸ್ಕಾರ"}, nil)
			},
			want: &ImportResult{Skipped: 1},
		},
		{
			name: "changed entry is updated with update option",
			entries: []dictionary.Entry{
				{English: "hello", Kannada: "ಹಲೋ"},
			},
			opts: ImportOptions{UpdateExisting: true},
			setup: func(repo *mock_dictionary.MockEntryRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "hello").
					Return(&dictionary.Entry{English: "hello", Kannada: "ನಮಸ್ಕಾರ"}, nil)
				repo.EXPECT().
					Upsert(gomock.Any(), dictionary.Entry{English: "hello", Kannada: "ಹಲೋ"}).
					Return(nil)
			},
			want: &ImportResult{Updated: 1},
		},
		{
			name: "dry run counts without writing",
			entries: []dictionary.Entry{
				{English: "tree", Kannada: "ಮರ"},
			},
			opts: ImportOptions{DryRun: true},
			setup: func(repo *mock_dictionary.MockEntryRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "tree").
					Return(nil, nil)
			},
			want: &ImportResult{New: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_dictionary.NewMockEntryRepository(ctrl)
			tt.setup(repo)

			var output bytes.Buffer
			importer := NewImporter(repo, &output)

			got, err := importer.ImportEntries(context.Background(), tt.entries, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, output.String(), "dictionary entries:")
		})
	}
}

func TestExporter_ExportEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_dictionary.NewMockEntryRepository(ctrl)

	repo.EXPECT().
		FindAll(gomock.Any()).
		Return([]dictionary.Entry{
			{English: "hello", Kannada: "ನಮಸ್ಕಾರ"},
			{English: "water", Kannada: "ನೀರು"},
		}, nil)

	path := filepath.Join(t.TempDir(), "entries.yml")
	count, err := NewExporter(repo).ExportEntries(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	entries, err := dictionary.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Contains(t, string(contents), "ನಮಸ್ಕಾರ")
}
