// Package markdown contains the line-level Markdown handling used around
// translation: a fence-aware line classifier that keeps code blocks away from
// the translation backend, and a normalizer that repairs the Markdown syntax
// machine translation tends to break (full-width punctuation, missing spaces
// after block markers, padded inline code spans).
package markdown
