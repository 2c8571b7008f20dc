package models

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"codeberg.org/snonux/mdtranslate/internal/translation"
)

// Lister handles listing the models of the configured provider
type Lister struct {
	config *translation.Config
	out    io.Writer
}

// NewLister creates a new model lister writing to out
func NewLister(config *translation.Config, out io.Writer) *Lister {
	return &Lister{
		config: config,
		out:    out,
	}
}

// ListAvailableModels prints the models usable for translation
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	switch l.config.Provider {
	case translation.ProviderGoogle, "":
		fmt.Fprintln(l.out, "Google Cloud Translation has no selectable models.")
		return nil
	case translation.ProviderOpenAI:
		return l.listOpenAI(ctx)
	case translation.ProviderGemini:
		return l.listGemini(ctx)
	default:
		return fmt.Errorf("unknown translation provider: %s", l.config.Provider)
	}
}

func (l *Lister) listOpenAI(ctx context.Context) error {
	if l.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .mdtranslate.yaml")
	}

	clientConfig := openai.DefaultConfig(l.config.OpenAIKey)
	if l.config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = l.config.OpenAIBaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: l.config.Timeout}
	client := openai.NewClientWithConfig(clientConfig)

	models, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isOpenAIChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	l.print("OpenAI chat models (for --openai-model):", chatModels)
	return nil
}

// isOpenAIChatModel filters out speech, image, embedding and moderation models
func isOpenAIChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "embedding", "whisper", "moderation", "transcribe", "image", "realtime"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "o1") ||
		strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") || strings.Contains(id, "chat")
}

func (l *Lister) listGemini(ctx context.Context) error {
	if l.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .mdtranslate.yaml")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     l.config.GeminiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: l.config.Timeout},
	}
	if l.config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: l.config.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	generateModels := []string{}
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		if supportsGenerate(model.SupportedActions) {
			generateModels = append(generateModels, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	sort.Strings(generateModels)

	l.print("Gemini models (for --gemini-model):", generateModels)
	return nil
}

func supportsGenerate(actions []string) bool {
	for _, action := range actions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}

func (l *Lister) print(title string, models []string) {
	fmt.Fprintln(l.out, title)
	if len(models) == 0 {
		fmt.Fprintln(l.out, "  No models found")
		return
	}
	for _, model := range models {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
}
