package markdown

import "regexp"

// fencePattern matches a code fence marker: three or more backticks at the
// very start of the line.
var fencePattern = regexp.MustCompile("^```")

// LineKind tells the caller what to do with a line
type LineKind int

const (
	// KindText is prose that should be translated
	KindText LineKind = iota
	// KindFence is a fence marker line; it is emitted verbatim
	KindFence
	// KindCode is a line inside a fenced block; it is emitted verbatim
	KindCode
)

// String returns a short name for the kind
func (k LineKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFence:
		return "fence"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// IsFence reports whether line opens or closes a fenced code block
func IsFence(line string) bool {
	return fencePattern.MatchString(line)
}

// Classifier tracks whether the input is currently inside a fenced code
// block. Open and close markers are not distinguished: every marker flips the
// state. An unterminated fence leaves the rest of the input classified as
// code.
type Classifier struct {
	inCode bool
	fences int
}

// NewClassifier creates a classifier positioned outside any code block
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the kind of line and advances the fence state
func (c *Classifier) Classify(line string) LineKind {
	if IsFence(line) {
		c.inCode = !c.inCode
		c.fences++
		return KindFence
	}

	if c.inCode {
		return KindCode
	}

	return KindText
}

// InCode reports whether the last fence marker seen opened a block
func (c *Classifier) InCode() bool {
	return c.inCode
}

// Fences returns the number of fence markers consumed so far
func (c *Classifier) Fences() int {
	return c.fences
}
