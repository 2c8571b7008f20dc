package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGoogleEndpoint is the Cloud Translation v2 REST endpoint
const DefaultGoogleEndpoint = "https://translation.googleapis.com/language/translate/v2"

const googleMaxResponseBytes = 1 << 20

// GoogleTranslator calls the Google Cloud Translation v2 API in plain-text mode
type GoogleTranslator struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText *string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewGoogleTranslator creates a Cloud Translation client
func NewGoogleTranslator(config *Config) (*GoogleTranslator, error) {
	if config.GoogleKey == "" {
		return nil, fmt.Errorf("Google %w", ErrMissingAPIKey)
	}

	endpoint := config.GoogleEndpoint
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}

	return &GoogleTranslator{
		apiKey:   config.GoogleKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: config.Timeout},
	}, nil
}

// Name returns the provider name
func (g *GoogleTranslator) Name() string {
	return ProviderGoogle
}

// Translate sends text to the API and returns the first translation
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	form := url.Values{
		"q":      {text},
		"source": {sourceLang},
		"target": {targetLang},
		"format": {"text"},
		"key":    {g.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", failure(g.Name(), err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", failure(g.Name(), err)
	}
	defer resp.Body.Close()

	var out googleResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, googleMaxResponseBytes)).Decode(&out)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			return "", failure(g.Name(), fmt.Errorf("API error (status %d): %s", resp.StatusCode, out.Error.Message))
		}
		return "", failure(g.Name(), fmt.Errorf("API error: status %d", resp.StatusCode))
	}

	if decodeErr != nil {
		return "", failure(g.Name(), fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr))
	}

	if len(out.Data.Translations) == 0 {
		return "", failure(g.Name(), fmt.Errorf("%w: no translations returned", ErrMalformedResponse))
	}

	translated := out.Data.Translations[0].TranslatedText
	if translated == nil {
		return "", failure(g.Name(), fmt.Errorf("%w: no translatedText", ErrMalformedResponse))
	}

	return *translated, nil
}
