package translator

import (
	"context"
	"log/slog"

	"github.com/padakosha/anuvada/internal/dictionary"
)

// Fallback tries the online translator first and answers from the offline
// dictionary when the online call fails for any reason. It never returns an
// error: the caller sees only the content, not which branch produced it.
type Fallback struct {
	online   Translator
	resolver *dictionary.Resolver
}

// NewFallback creates a Fallback. online may be nil, in which case every
// request is answered from the dictionary.
func NewFallback(online Translator, resolver *dictionary.Resolver) *Fallback {
	return &Fallback{
		online:   online,
		resolver: resolver,
	}
}

// Translate implements the Translator interface.
func (f *Fallback) Translate(ctx context.Context, text string) (string, error) {
	if f.online != nil {
		translated, err := f.online.Translate(ctx, text)
		if err == nil {
			return translated, nil
		}
		slog.Default().Debug("online translation failed, using dictionary",
			slog.Any("error", err),
		)
	}
	return f.resolver.Resolve(text), nil
}
