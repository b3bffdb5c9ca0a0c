package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/padakosha/anuvada/internal/bootstrap"
	"github.com/padakosha/anuvada/internal/config"
	"github.com/padakosha/anuvada/internal/dictionary"
	"github.com/padakosha/anuvada/internal/server"
	"github.com/padakosha/anuvada/internal/translator"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "anuvada-server",
		Short:         "English to Kannada translation HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	resolver, err := dictionary.NewResolverFromConfig(cfg.Dictionary.ExtraEntriesFile)
	if err != nil {
		return fmt.Errorf("dictionary.NewResolverFromConfig() > %w", err)
	}
	client := translator.NewClient(translator.Config{
		BaseURL:        cfg.Translator.Endpoint,
		SourceLanguage: cfg.Translator.SourceLanguage,
		TargetLanguage: cfg.Translator.TargetLanguage,
		RetryAttempts:  cfg.Translator.RetryAttempts,
		Timeout:        time.Duration(cfg.Translator.TimeoutSeconds) * time.Second,
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		return client.Close()
	})

	handler := server.NewTranslateHandler(translator.NewFallback(client, resolver))

	mux := http.NewServeMux()
	if err := handler.RegisterRoutes(mux); err != nil {
		return fmt.Errorf("handler.RegisterRoutes() > %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
