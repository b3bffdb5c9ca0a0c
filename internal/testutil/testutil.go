// Package testutil provides shared test helpers for config files and
// dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/padakosha/anuvada/internal/dictionary"
)

// SetupTestConfig creates a minimal config file for testing and returns its path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	phrasebookDir := filepath.Join(tmpDir, "phrasebooks")
	require.NoError(t, os.MkdirAll(phrasebookDir, 0755))

	configContent := fmt.Sprintf(`translator:
  source_language: en
  target_language: kn
  retry_attempts: 0
outputs:
  phrasebook_directory: %s
`, phrasebookDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteEntriesFile writes entries as a YAML dictionary file and returns its path.
func WriteEntriesFile(t *testing.T, dir string, entries []dictionary.Entry) string {
	t.Helper()

	contents, err := yaml.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(dir, "entries.yml")
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}
