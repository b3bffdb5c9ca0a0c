// Package dictionary provides the offline English to Kannada lookup table
// and the token level resolver shared by every front-end.
package dictionary

import (
	"regexp"
	"sort"
	"strings"
)

// Entry is a single English to Kannada mapping.
type Entry struct {
	English string `db:"english" yaml:"english"`
	Kannada string `db:"kannada" yaml:"kannada"`
}

// Resolver resolves English text against a fixed in-memory mapping.
// The mapping is built once and never mutated, so a Resolver is safe
// for concurrent use.
type Resolver struct {
	entries map[string]string
}

// NewResolver builds a Resolver from entries. English keys are lowercased,
// and a later entry for the same key wins.
func NewResolver(entries []Entry) *Resolver {
	mapping := make(map[string]string, len(entries))
	for _, entry := range entries {
		mapping[strings.ToLower(entry.English)] = entry.Kannada
	}
	return &Resolver{entries: mapping}
}

var (
	// tokenPattern splits input into word runs and single punctuation marks
	// so that "hello, friend!" keeps its punctuation after substitution.
	tokenPattern = regexp.MustCompile(`\w+|[^\s\w]`)
	// closingPattern matches punctuation that should attach to the previous
	// token without a leading space.
	closingPattern = regexp.MustCompile(`^[.,!?;:%)\]]`)
)

// Resolve translates text token by token. Known tokens are substituted with
// their Kannada equivalent and unknown tokens pass through unchanged, so the
// result is always a best-effort string and Resolve never fails.
func (r *Resolver) Resolve(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// A whole-phrase match covers multi-word entries like "good morning".
	if kannada, ok := r.entries[strings.ToLower(text)]; ok {
		return kannada
	}

	tokens := tokenPattern.FindAllString(text, -1)
	var builder strings.Builder
	for i, token := range tokens {
		if i > 0 && !closingPattern.MatchString(token) {
			builder.WriteString(" ")
		}
		if kannada, ok := r.entries[strings.ToLower(token)]; ok {
			builder.WriteString(kannada)
			continue
		}
		builder.WriteString(token)
	}
	return builder.String()
}

// Lookup returns the Kannada equivalent of a single word, case-insensitively.
func (r *Resolver) Lookup(word string) (string, bool) {
	kannada, ok := r.entries[strings.ToLower(strings.TrimSpace(word))]
	return kannada, ok
}

// Entries returns every mapping sorted by English key.
func (r *Resolver) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for english, kannada := range r.entries {
		entries = append(entries, Entry{English: english, Kannada: kannada})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].English < entries[j].English
	})
	return entries
}

// Len returns the number of mappings.
func (r *Resolver) Len() int {
	return len(r.entries)
}
