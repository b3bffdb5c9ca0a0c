package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Config configures the online translation client.
type Config struct {
	// BaseURL overrides the translation endpoint, used in tests.
	BaseURL string
	// SourceLanguage and TargetLanguage are ISO 639-1 codes.
	SourceLanguage string
	TargetLanguage string
	// RetryAttempts is the number of retries after the first failed request.
	RetryAttempts uint
	// Timeout bounds a single request.
	Timeout time.Duration
}

// Client calls the public translate endpoint. The endpoint takes the text as
// a query parameter and answers with nested JSON arrays where each element of
// the first array holds a translated segment at index 0.
type Client struct {
	httpClient       *resty.Client
	sourceLanguage   string
	targetLanguage   string
	maxRetryAttempts uint
}

// NewClient creates a new online translation Client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		httpClient:       client,
		sourceLanguage:   cfg.SourceLanguage,
		targetLanguage:   cfg.TargetLanguage,
		maxRetryAttempts: cfg.RetryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on JSON parsing errors as they might be due to incomplete responses
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Translate requests an online translation, retrying transient failures with
// backoff. An empty input returns an empty string without a request.
func (client *Client) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var result string
	if err := retry.Do(
		func() error {
			translated, err := client.translate(ctx, text)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = translated
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) translate(ctx context.Context, text string) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     client.sourceLanguage,
			"tl":     client.targetLanguage,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	translated, err := parseResponse(response.String())
	if err != nil {
		return "", fmt.Errorf("parseResponse > %w", err)
	}
	return translated, nil
}

// parseResponse extracts the translated text from the endpoint's nested
// array payload: [[["<translated>", "<source>", ...], ...], ...].
func parseResponse(body string) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("json.Unmarshal(%s) > %w", body, err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response payload: %s", body)
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("json.Unmarshal(segments %s) > %w", body, err)
	}

	var builder strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(segment[0], &chunk); err != nil {
			return "", fmt.Errorf("json.Unmarshal(segment chunk) > %w", err)
		}
		builder.WriteString(chunk)
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response: %s", body)
	}
	return builder.String(), nil
}
