package dictionary

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed entries.yml
var builtinEntries []byte

// Load parses the built-in dictionary embedded in the binary.
func Load() ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(builtinEntries, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(builtin entries) > %w", err)
	}
	return entries, nil
}

// LoadFile parses additional entries from a YAML file.
func LoadFile(path string) ([]Entry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return entries, nil
}

// NewResolverFromConfig builds a Resolver from the built-in dictionary,
// merging entries from extraEntriesFile over the built-ins when the path
// is not empty.
func NewResolverFromConfig(extraEntriesFile string) (*Resolver, error) {
	entries, err := Load()
	if err != nil {
		return nil, fmt.Errorf("dictionary.Load() > %w", err)
	}
	if extraEntriesFile != "" {
		extra, err := LoadFile(extraEntriesFile)
		if err != nil {
			return nil, fmt.Errorf("dictionary.LoadFile() > %w", err)
		}
		entries = append(entries, extra...)
	}
	return NewResolver(entries), nil
}
