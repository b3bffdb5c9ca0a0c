// Package server provides the HTTP handlers for the web front-end.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/padakosha/anuvada/internal/translator"
)

//go:embed web
var webAssets embed.FS

// TranslateRequest is the JSON body of a translate call.
type TranslateRequest struct {
	Text string `json:"text"`
}

// TranslateResponse is the JSON answer of a translate call.
type TranslateResponse struct {
	Translated string `json:"translated"`
}

// TranslateHandler serves the browser page and the translate endpoint.
type TranslateHandler struct {
	translator translator.Translator
}

// NewTranslateHandler creates a new TranslateHandler. The translator is
// expected to be a fallback translator so the endpoint stays available
// when the online service is unreachable.
func NewTranslateHandler(t translator.Translator) *TranslateHandler {
	return &TranslateHandler{translator: t}
}

// RegisterRoutes attaches the page and API routes to mux.
func (handler *TranslateHandler) RegisterRoutes(mux *http.ServeMux) error {
	page, err := webAssets.ReadFile("web/index.html")
	if err != nil {
		return fmt.Errorf("webAssets.ReadFile(index.html) > %w", err)
	}
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	mux.HandleFunc("POST /api/v1/translate", handler.handleTranslate)
	return nil
}

func (handler *TranslateHandler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var request TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	translated, err := handler.translator.Translate(r.Context(), request.Text)
	if err != nil {
		// A fallback translator never fails, but a bare client might.
		slog.Default().Error("translation failed",
			slog.Any("error", err),
		)
		http.Error(w, "translation failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TranslateResponse{Translated: translated}); err != nil {
		slog.Default().Error("failed to encode response",
			slog.Any("error", err),
		)
	}
}
