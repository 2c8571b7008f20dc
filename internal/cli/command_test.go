package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/mdtranslate/internal/testutil"
	"codeberg.org/snonux/mdtranslate/internal/translation"
)

// resetViper restores the global viper instance after the test
func resetViper(t *testing.T) {
	t.Helper()

	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	t.Cleanup(func() {
		*viper.GetViper() = *originalConfig
	})
	viper.Reset()
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "mdtranslate" {
		t.Errorf("Expected Use to be 'mdtranslate', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "English to Japanese") {
		t.Errorf("Expected Short description to mention 'English to Japanese'")
	}

	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("Expected usage and error printing to be silenced")
	}

	// Test that flags are set up
	for _, name := range []string{"config", "provider", "timeout", "dry-run", "verbose", "list-models", "openai-model", "gemini-model"} {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestCreateRootCommand_RejectsArgs(t *testing.T) {
	resetViper(t)

	cmd := CreateRootCommand(NewFlags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.SetArgs([]string{"README.md"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for positional argument")
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"provider":     "google",
		"timeout":      "30s",
		"dry-run":      "false",
		"openai-model": "gpt-4o-mini",
		"gemini-model": "gemini-2.5-flash",
	}
	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}

	if cmd.Flags().ShorthandLookup("p") == nil {
		t.Error("Expected -p shorthand for --provider")
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `translation:
  provider: openai
openai:
  api_key: test-key
  model: gpt-4o`
				testutil.CreateTestFile(t, cfgPath, []byte(content))
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			cfgPath := tt.setupFunc(t)
			InitConfig(cfgPath)

			// Test environment variable prefix
			t.Setenv("MDTRANSLATE_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			// Nested keys map to underscored variables
			t.Setenv("MDTRANSLATE_GOOGLE_ENDPOINT", "http://localhost:9999")
			if viper.GetString("google.endpoint") != "http://localhost:9999" {
				t.Error("Nested environment variable not properly loaded")
			}

			if cfgPath != "" {
				if viper.GetString("translation.provider") != "openai" {
					t.Errorf("Expected provider from config file, got %q", viper.GetString("translation.provider"))
				}
				if viper.GetString("openai.api_key") != "test-key" {
					t.Errorf("Expected api key from config file, got %q", viper.GetString("openai.api_key"))
				}
			}
		})
	}
}

func TestGetKeys(t *testing.T) {
	tests := []struct {
		name      string
		envVar    string
		configKey string
		get       func() string
	}{
		{"google", "GOOGLE_API_KEY", "google.api_key", GetGoogleKey},
		{"openai", "OPENAI_API_KEY", "openai.api_key", GetOpenAIKey},
		{"gemini", "GEMINI_API_KEY", "gemini.api_key", GetGeminiKey},
	}

	for _, tt := range tests {
		t.Run(tt.name+" from environment", func(t *testing.T) {
			resetViper(t)
			t.Setenv(tt.envVar, "env-test-key")
			viper.Set(tt.configKey, "config-test-key")

			if got := tt.get(); got != "env-test-key" {
				t.Errorf("got %q, want env-test-key", got)
			}
		})

		t.Run(tt.name+" from config when no env", func(t *testing.T) {
			resetViper(t)
			testutil.Unsetenv(t, tt.envVar)
			viper.Set(tt.configKey, "config-test-key")

			if got := tt.get(); got != "config-test-key" {
				t.Errorf("got %q, want config-test-key", got)
			}
		})

		t.Run(tt.name+" empty when neither set", func(t *testing.T) {
			resetViper(t)
			testutil.Unsetenv(t, tt.envVar)

			if got := tt.get(); got != "" {
				t.Errorf("got %q, want empty", got)
			}
		})
	}
}

func TestTranslationConfig(t *testing.T) {
	resetViper(t)
	testutil.Unsetenv(t, "OPENAI_API_KEY")
	testutil.Unsetenv(t, "GEMINI_API_KEY")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Flag defaults only
	config := TranslationConfig(flags)
	if config.Provider != translation.ProviderGoogle {
		t.Errorf("Provider = %s, want google", config.Provider)
	}
	if config.GoogleKey != "google-key" {
		t.Errorf("GoogleKey = %s, want google-key", config.GoogleKey)
	}
	if config.GoogleEndpoint != translation.DefaultGoogleEndpoint {
		t.Errorf("GoogleEndpoint = %s", config.GoogleEndpoint)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", config.Timeout)
	}

	// Config file values apply when the flag is not changed
	viper.Set("openai.model", "gpt-4o")
	viper.Set("openai.base_url", "http://localhost:8080/v1")
	if config := TranslationConfig(flags); config.OpenAIModel != "gpt-4o" || config.OpenAIBaseURL != "http://localhost:8080/v1" {
		t.Errorf("OpenAI settings = %q %q", config.OpenAIModel, config.OpenAIBaseURL)
	}

	// Command line flags win
	cmd.Flags().Set("provider", "gemini")
	cmd.Flags().Set("timeout", "5s")
	cmd.Flags().Set("gemini-model", "gemini-pro")

	config = TranslationConfig(flags)
	if config.Provider != translation.ProviderGemini {
		t.Errorf("Provider = %s, want gemini", config.Provider)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", config.Timeout)
	}
	if config.GeminiModel != "gemini-pro" {
		t.Errorf("GeminiModel = %s, want gemini-pro", config.GeminiModel)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("provider", "openai")
	cmd.Flags().Set("openai-model", "gpt-4o")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("translation.provider") != "openai" {
		t.Errorf("Expected translation.provider to be openai, got %s", viper.GetString("translation.provider"))
	}

	if viper.GetString("openai.model") != "gpt-4o" {
		t.Errorf("Expected openai.model to be gpt-4o, got %s", viper.GetString("openai.model"))
	}
}
