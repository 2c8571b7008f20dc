package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/mdtranslate/internal"
	"codeberg.org/snonux/mdtranslate/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtranslate",
		Short: "Translate Markdown from English to Japanese",
		Long: `mdtranslate reads Markdown from standard input, translates every line
outside fenced code blocks from English to Japanese and writes the result
to standard output.

Markdown damaged by the translation (full-width #, *, +, - and > markers,
missing spaces after list and heading markers, padded inline code) is
repaired line by line. Code blocks are copied unchanged.

Examples:
  mdtranslate < README.md > README.ja.md
  mdtranslate --provider openai < guide.md
  mdtranslate --dry-run < README.ja.md   # only repair existing translations
  mdtranslate --provider gemini --list-models`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.mdtranslate.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", flags.Provider, "Translation backend: google, openai or gemini")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for each translation request")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Only repair Markdown, do not call the translation backend")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print progress to stderr")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the models offered by the selected provider and exit")

	// Model flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used with --provider openai")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used with --provider gemini")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".mdtranslate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mdtranslate")
	}

	// Environment variables
	viper.SetEnvPrefix("MDTRANSLATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGoogleKey retrieves the Google Cloud API key from environment or config
func GetGoogleKey() string {
	return lookupKey("GOOGLE_API_KEY", "google.api_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return lookupKey("OPENAI_API_KEY", "openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return lookupKey("GEMINI_API_KEY", "gemini.api_key")
}

func lookupKey(envVar, configKey string) string {
	// First check environment variable
	if key := os.Getenv(envVar); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString(configKey)
}

// TranslationConfig builds the backend configuration from flags, config file
// and environment. Flags set on the command line win over the config file.
func TranslationConfig(flags *Flags) *translation.Config {
	config := translation.DefaultConfig()

	config.Provider = stringSetting("translation.provider", flags.Provider)
	if timeout := viper.GetDuration("translation.timeout"); timeout > 0 {
		config.Timeout = timeout
	} else if flags.Timeout > 0 {
		config.Timeout = flags.Timeout
	}

	config.GoogleKey = GetGoogleKey()
	config.GoogleEndpoint = stringSetting("google.endpoint", config.GoogleEndpoint)

	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIModel = stringSetting("openai.model", flags.OpenAIModel)
	config.OpenAIBaseURL = viper.GetString("openai.base_url")

	config.GeminiKey = GetGeminiKey()
	config.GeminiModel = stringSetting("gemini.model", flags.GeminiModel)
	config.GeminiBaseURL = viper.GetString("gemini.base_url")

	return config
}

func stringSetting(key, fallback string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return fallback
}
