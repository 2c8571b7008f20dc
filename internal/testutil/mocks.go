package testutil

import (
	"context"
	"fmt"
	"strings"
)

// TranslateCall records one call made to MockTranslator
type TranslateCall struct {
	Text       string
	SourceLang string
	TargetLang string
}

// String formats the call the way test failures print it
func (c TranslateCall) String() string {
	return fmt.Sprintf("Translate: %q (%s->%s)", c.Text, c.SourceLang, c.TargetLang)
}

// MockTranslator mocks a translation backend
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	// FailAfter makes every call after the first FailAfter calls return
	// FailErr. Zero disables it.
	FailAfter int
	FailErr   error
	Calls     []TranslateCall
}

// NewMockTranslator creates a mock with empty lookup tables
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		Translations: make(map[string]string),
		Errors:       make(map[string]error),
	}
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.Calls = append(m.Calls, TranslateCall{Text: text, SourceLang: fromLang, TargetLang: toLang})

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if m.FailAfter > 0 && len(m.Calls) > m.FailAfter {
		return "", m.FailErr
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return "訳:" + text, nil
}

// Texts returns the text of every recorded call in order
func (m *MockTranslator) Texts() []string {
	texts := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		texts = append(texts, call.Text)
	}
	return texts
}

// CallLog returns all recorded calls, one per line
func (m *MockTranslator) CallLog() string {
	lines := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		lines = append(lines, call.String())
	}
	return strings.Join(lines, "\n")
}
