package markdown

import "regexp"

// Rule is a single substitution applied to translated text
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply replaces every non-overlapping match of the rule in s
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

func literal(name, from, to string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(regexp.QuoteMeta(from)),
		Replacement: to,
	}
}

// markerSpace inserts a space between a run of marker characters at the start
// of the line and the character that follows it.
func markerSpace(name, pattern string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(pattern),
		Replacement: "${1} ${2}",
	}
}

// defaultRules is the ordered substitution chain. The full-width replacements
// must run before the marker spacing rules, otherwise "＃Title" would never
// become a heading.
var defaultRules = []Rule{
	literal("fullwidth-hash", "＃", "#"),
	literal("fullwidth-asterisk", "＊", "*"),
	literal("fullwidth-plus", "＋", "+"),
	literal("minus-sign", "−", "-"),
	literal("fullwidth-greater", "＞", ">"),
	markerSpace("heading-space", `^(#+)([^ #])`),
	markerSpace("asterisk-space", `^(\*+)([^ *])`),
	markerSpace("dash-space", `^(-+)([^ -])`),
	markerSpace("quote-space", `^(>+)([^ >])`),
	markerSpace("ordered-space", `^([0-9]+\.)([^ ])`),
	{
		// A closing single quote is taken for a mangled backtick.
		Name:        "inline-code",
		Pattern:     regexp.MustCompile("` *([^`]*?[^` ]) *[`']"),
		Replacement: "`${1}`",
	},
}

// Rules returns a copy of the default substitution chain in execution order
func Rules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// Normalizer repairs Markdown syntax in a single translated line
type Normalizer struct {
	rules []Rule
}

// NewNormalizer creates a normalizer running rules in order. Without
// arguments the default chain from Rules is used.
func NewNormalizer(rules ...Rule) *Normalizer {
	if len(rules) == 0 {
		rules = Rules()
	}
	return &Normalizer{rules: rules}
}

// Normalize runs every rule over s, each on the previous rule's output
func (n *Normalizer) Normalize(s string) string {
	for _, rule := range n.rules {
		s = rule.Apply(s)
	}
	return s
}

// Rules returns the rules this normalizer applies
func (n *Normalizer) Rules() []Rule {
	rules := make([]Rule, len(n.rules))
	copy(rules, n.rules)
	return rules
}
