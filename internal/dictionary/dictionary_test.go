package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	entries, err := Load()
	require.NoError(t, err)
	return NewResolver(entries)
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "known single token",
			text: "hello",
			want: "ನಮಸ್ಕಾರ",
		},
		{
			name: "case insensitive lookup",
			text: "Hello",
			want: "ನಮಸ್ಕಾರ",
		},
		{
			name: "unknown token passes through",
			text: "computer",
			want: "computer",
		},
		{
			name: "empty string",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "   ",
			want: "",
		},
		{
			name: "multi word phrase of known tokens keeps order",
			text: "water food friend",
			want: "ನೀರು ಆಹಾರ ಸ್ನೇಹಿತ",
		},
		{
			name: "whole phrase entry wins over per-token lookup",
			text: "good morning",
			want: "ಶುಭೋದಯ",
		},
		{
			name: "whole phrase entry is case insensitive",
			text: "Thank You",
			want: "ಧನ್ಯವಾದ",
		},
		{
			name: "mixed known and unknown tokens",
			text: "hello computer friend",
			want: "ನಮಸ್ಕಾರ computer ಸ್ನೇಹಿತ",
		},
		{
			name: "punctuation stays attached to the previous token",
			text: "hello, friend!",
			want: "ನಮಸ್ಕಾರ, ಸ್ನೇಹಿತ!",
		},
		{
			name: "surrounding whitespace is trimmed",
			text: "  hello  ",
			want: "ನಮಸ್ಕಾರ",
		},
	}

	resolver := newTestResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.text))
		})
	}
}

func TestResolver_Resolve_punctuationJoining(t *testing.T) {
	resolver := newTestResolver(t)

	// No space before closing punctuation, space before everything else.
	got := resolver.Resolve("yes, water please.")
	assert.Equal(t, "ಹೌದು, ನೀರು ದಯವಿಟ್ಟು.", got)
}

func TestResolver_Resolve_passThroughIsIdempotent(t *testing.T) {
	resolver := newTestResolver(t)

	once := resolver.Resolve("spaceship")
	twice := resolver.Resolve(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, "spaceship", twice)
}

func TestResolver_Lookup(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		want      string
		wantFound bool
	}{
		{
			name:      "known word",
			word:      "water",
			want:      "ನೀರು",
			wantFound: true,
		},
		{
			name:      "known word with different case",
			word:      "WATER",
			want:      "ನೀರು",
			wantFound: true,
		},
		{
			name:      "unknown word",
			word:      "computer",
			wantFound: false,
		},
	}

	resolver := newTestResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := resolver.Lookup(tt.word)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResolver_laterEntryWins(t *testing.T) {
	resolver := NewResolver([]Entry{
		{English: "hello", Kannada: "first"},
		{English: "Hello", Kannada: "second"},
	})
	got, found := resolver.Lookup("hello")
	require.True(t, found)
	assert.Equal(t, "second", got)
}

func TestResolver_Entries(t *testing.T) {
	resolver := NewResolver([]Entry{
		{English: "water", Kannada: "ನೀರು"},
		{English: "hello", Kannada: "ನಮಸ್ಕಾರ"},
	})

	got := resolver.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].English)
	assert.Equal(t, "water", got[1].English)
}
