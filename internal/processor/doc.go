// Package processor drives a Markdown document through translation line by
// line. Fenced code blocks are copied verbatim, every other line is sent to
// the translation backend and repaired by the markdown normalizer before it
// is written out in input order.
package processor
