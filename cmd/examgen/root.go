package main

import (
	"os"

	"examgen/internal/adapter/quizgen"
	"examgen/internal/config"
	"examgen/internal/logger"

	"github.com/spf13/cobra"
)

// Overridden in tests.
var (
	geminiFactory quizgen.ModelFactory
	openAIFactory quizgen.ModelFactory = quizgen.NewOpenAIModel
)

var rootCmd = &cobra.Command{
	Use:           "examgen",
	Short:         "Generate exam questions from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(askCmd)
}

// loadConfig reads the shared config and sets up logging for a subcommand.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	// Keep provider chatter out of the printed sheets unless asked for.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Logger.Level = "warn"
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	return cfg, nil
}
