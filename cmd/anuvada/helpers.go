package main

import (
	"fmt"
	"time"

	"github.com/padakosha/anuvada/internal/config"
	"github.com/padakosha/anuvada/internal/dictionary"
	"github.com/padakosha/anuvada/internal/translator"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newResolver(cfg *config.Config) (*dictionary.Resolver, error) {
	resolver, err := dictionary.NewResolverFromConfig(cfg.Dictionary.ExtraEntriesFile)
	if err != nil {
		return nil, fmt.Errorf("dictionary.NewResolverFromConfig() > %w", err)
	}
	return resolver, nil
}

// newTranslator builds the translator for a front-end. With online enabled
// the online client is tried first and the resolver answers on failure;
// otherwise every request is answered offline.
func newTranslator(cfg *config.Config, resolver *dictionary.Resolver, online bool) translator.Translator {
	if !online {
		return translator.NewFallback(nil, resolver)
	}
	client := translator.NewClient(translator.Config{
		BaseURL:        cfg.Translator.Endpoint,
		SourceLanguage: cfg.Translator.SourceLanguage,
		TargetLanguage: cfg.Translator.TargetLanguage,
		RetryAttempts:  cfg.Translator.RetryAttempts,
		Timeout:        time.Duration(cfg.Translator.TimeoutSeconds) * time.Second,
	})
	return translator.NewFallback(client, resolver)
}
