package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	entries, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	resolver := NewResolver(entries)
	got, found := resolver.Lookup("hello")
	require.True(t, found)
	assert.Equal(t, "ನಮಸ್ಕಾರ", got)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []Entry
		wantErr  bool
	}{
		{
			name: "valid entries file",
			contents: `- english: tree
  kannada: ಮರ
- english: bird
  kannada: ಹಕ್ಕಿ
`,
			want: []Entry{
				{English: "tree", Kannada: "ಮರ"},
				{English: "bird", Kannada: "ಹಕ್ಕಿ"},
			},
		},
		{
			name:     "invalid yaml",
			contents: "english: [unclosed",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "entries.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))

			got, err := LoadFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile_missingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestNewResolverFromConfig(t *testing.T) {
	t.Run("built-in only", func(t *testing.T) {
		resolver, err := NewResolverFromConfig("")
		require.NoError(t, err)
		assert.Equal(t, "ನೀರು", resolver.Resolve("water"))
	})

	t.Run("extra entries override built-ins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.yml")
		require.NoError(t, os.WriteFile(path, []byte(`- english: water
  kannada: ಜಲ
- english: tree
  kannada: ಮರ
`), 0644))

		resolver, err := NewResolverFromConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "ಜಲ", resolver.Resolve("water"))
		assert.Equal(t, "ಮರ", resolver.Resolve("tree"))
	})
}
