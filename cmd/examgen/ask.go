package main

import (
	"fmt"
	"strings"

	"examgen/internal/config"
	"examgen/internal/domain"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"
)

const defaultAskPrompt = "Tell me a three-sentence bedtime story about a unicorn."

var askCmd = &cobra.Command{
	Use:   "ask [prompt...]",
	Short: "Send one prompt to OpenAI and print the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		modelName, _ := cmd.Flags().GetString("model")
		maxTokens, _ := cmd.Flags().GetInt("max-tokens")

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if modelName == "" {
			modelName = cfg.LLM.OpenAIModel
		}

		key := config.APIKey(config.OpenAIAPIKey)()
		if key == "" {
			return domain.NewConfigurationError("OPENAI_API_KEY")
		}

		prompt := strings.TrimSpace(strings.Join(args, " "))
		if prompt == "" {
			prompt = defaultAskPrompt
		}

		llm, err := openAIFactory(cmd.Context(), key, modelName)
		if err != nil {
			return fmt.Errorf("create openai client: %w", err)
		}

		reply, err := llms.GenerateFromSinglePrompt(cmd.Context(), llm, prompt, llms.WithMaxTokens(maxTokens))
		if err != nil {
			return fmt.Errorf("generate reply: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

func init() {
	askCmd.Flags().String("model", "", "OpenAI model (default from config)")
	askCmd.Flags().Int("max-tokens", 150, "Maximum tokens in the reply")
}
