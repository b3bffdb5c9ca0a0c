// Package translator provides online translation through a public web
// endpoint and the fallback policy that keeps translation available offline.
package translator

import "context"

//go:generate mockgen -source=translator.go -destination=../mocks/translator/mock_translator.go -package=mock_translator Translator

// Translator translates English text to Kannada.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
