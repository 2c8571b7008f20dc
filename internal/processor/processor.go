package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/mdtranslate/internal/markdown"
	"codeberg.org/snonux/mdtranslate/internal/translation"
)

// Options controls how a document is processed
type Options struct {
	DryRun  bool      // Normalize text lines without calling the backend
	Verbose bool      // Print per-line progress and a summary
	Log     io.Writer // Destination of diagnostics, os.Stderr if nil
}

// Stats summarizes a processing run
type Stats struct {
	Lines      int // Lines read
	Fences     int // Fence marker lines
	Code       int // Lines inside fenced blocks
	Translated int // Text lines translated, or only normalized in dry-run mode
	Blank      int // Whitespace-only text lines copied without translation
}

// Processor translates Markdown documents
type Processor struct {
	translator translation.Translator
	normalizer *markdown.Normalizer
	options    Options
}

// NewProcessor creates a processor using translator for all text lines
func NewProcessor(translator translation.Translator, options *Options) *Processor {
	p := &Processor{
		translator: translator,
		normalizer: markdown.NewNormalizer(),
	}
	if options != nil {
		p.options = *options
	}
	if p.options.Log == nil {
		p.options.Log = os.Stderr
	}
	return p
}

// Process reads Markdown from r and writes the translated document to w.
// The first translation failure stops processing; lines written before it
// stay written.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (*Stats, error) {
	stats := &Stats{}
	classifier := markdown.NewClassifier()
	reader := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return stats, fmt.Errorf("failed to read input: %w", readErr)
		}

		if line != "" {
			stats.Lines++
			out, err := p.processLine(ctx, classifier, line, stats)
			if err != nil {
				return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return stats, fmt.Errorf("failed to write output: %w", err)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if classifier.InCode() {
		fmt.Fprintf(p.options.Log, "Warning: input ends inside a code block (%d fence markers)\n", classifier.Fences())
	}

	if p.options.Verbose {
		fmt.Fprintf(p.options.Log, "Processed %d lines: %d translated, %d code, %d fence markers, %d blank\n",
			stats.Lines, stats.Translated, stats.Code, stats.Fences, stats.Blank)
	}

	return stats, nil
}

func (p *Processor) processLine(ctx context.Context, classifier *markdown.Classifier, line string, stats *Stats) (string, error) {
	switch classifier.Classify(line) {
	case markdown.KindFence:
		stats.Fences++
		return line, nil
	case markdown.KindCode:
		stats.Code++
		return line, nil
	}

	body, eol := splitLineEnding(line)
	if strings.TrimSpace(body) == "" {
		stats.Blank++
		return line, nil
	}

	translated, err := p.translate(ctx, body)
	if err != nil {
		return "", err
	}
	stats.Translated++

	return p.normalizer.Normalize(translated) + eol, nil
}

func (p *Processor) translate(ctx context.Context, text string) (string, error) {
	if p.options.DryRun {
		return text, nil
	}

	if p.options.Verbose {
		fmt.Fprintf(p.options.Log, "Translating: %q\n", text)
	}

	return p.translator.Translate(ctx, text, translation.SourceLanguage, translation.TargetLanguage)
}

// splitLineEnding separates a line from its terminator
func splitLineEnding(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
