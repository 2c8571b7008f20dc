package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Provider   string
	Timeout    time.Duration
	DryRun     bool
	Verbose    bool
	ListModels bool

	// Model flags for the LLM backends
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:    "google",
		Timeout:     30 * time.Second,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.5-flash",
	}
}
