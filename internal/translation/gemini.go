package translation

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiTranslator translates with a Google Gemini model
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

// NewGeminiTranslator creates a translator backed by the Gemini API
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini %w", ErrMissingAPIKey)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     config.GeminiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: config.Timeout},
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = DefaultConfig().GeminiModel
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name
func (t *GeminiTranslator) Name() string {
	return ProviderGemini
}

// Translate asks the model for a translation of text
func (t *GeminiTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction(sourceLang, targetLang), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(text), generateConfig)
	if err != nil {
		return "", failure(t.Name(), fmt.Errorf("Gemini API error: %w", err))
	}

	out := resp.Text()
	if out == "" {
		return "", failure(t.Name(), fmt.Errorf("%w: empty response", ErrMalformedResponse))
	}

	return keepIndent(text, out), nil
}
