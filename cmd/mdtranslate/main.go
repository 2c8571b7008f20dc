package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/mdtranslate/internal/cli"
	"codeberg.org/snonux/mdtranslate/internal/models"
	"codeberg.org/snonux/mdtranslate/internal/processor"
	"codeberg.org/snonux/mdtranslate/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Execute command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.TranslationConfig(flags), cmd.OutOrStdout())
		return lister.ListAvailableModels(cmd.Context())
	}

	var translator translation.Translator

	// Dry runs never reach the backend, so they need no credentials
	if !flags.DryRun {
		var err error
		translator, err = translation.NewTranslator(cmd.Context(), cli.TranslationConfig(flags))
		if err != nil {
			return fmt.Errorf("failed to set up translation: %w", err)
		}
	}

	proc := processor.NewProcessor(translator, &processor.Options{
		DryRun:  flags.DryRun,
		Verbose: flags.Verbose,
		Log:     cmd.ErrOrStderr(),
	})

	_, err := proc.Process(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}
