// Package translation provides English to Japanese translation backends for
// Markdown lines. The default backend is the Google Cloud Translation API;
// OpenAI chat models and Google Gemini are available as alternatives. All
// backends satisfy the Translator interface so callers can swap in a fake.
package translation
