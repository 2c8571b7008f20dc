package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// The language pair is fixed.
var (
	SourceLanguage = language.English.String()
	TargetLanguage = language.Japanese.String()
)

// Provider names accepted by NewTranslator
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Translator translates a piece of text between two languages
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Config holds the settings for all translation backends
type Config struct {
	Provider string        // "google", "openai" or "gemini"
	Timeout  time.Duration // Per-request HTTP timeout

	// Google Cloud Translation settings
	GoogleKey      string
	GoogleEndpoint string

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGoogle,
		Timeout:        30 * time.Second,
		GoogleEndpoint: DefaultGoogleEndpoint,
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.5-flash",
	}
}

// NewTranslator creates the backend selected by config.Provider
func NewTranslator(ctx context.Context, config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		translator Translator
		err        error
	)

	switch config.Provider {
	case ProviderGoogle, "":
		translator, err = NewGoogleTranslator(config)
	case ProviderOpenAI:
		translator, err = NewOpenAITranslator(config)
	case ProviderGemini:
		translator, err = NewGeminiTranslator(ctx, config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}

	if err != nil {
		return nil, err
	}
	return translator, nil
}

// languageName returns the English name of a language code, e.g. "Japanese"
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

// instruction builds the prompt used by the LLM backends
func instruction(sourceLang, targetLang string) string {
	return fmt.Sprintf("Translate the user's Markdown text from %s to %s. "+
		"Respond with only the translation, nothing else. "+
		"Keep Markdown markup, URLs and inline code unchanged.",
		languageName(sourceLang), languageName(targetLang))
}

// keepIndent trims the padding language models put around their answer while
// preserving the indentation of the source line, which nests list items.
func keepIndent(source, translated string) string {
	indent := source[:len(source)-len(strings.TrimLeft(source, " \t"))]
	return indent + strings.TrimSpace(translated)
}
