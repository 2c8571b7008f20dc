// Package models lists the models a translation backend offers, so users can
// pick a value for --openai-model or --gemini-model.
package models
