package main

import (
	"fmt"

	"examgen/internal/adapter/quizgen"
	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/logger"

	"github.com/spf13/cobra"
)

type sheetExample struct {
	title   string
	subject string
	grade   int
}

var sheetExamples = []sheetExample{
	{"Grade 5 Math - Multiplications", "math - multiplications", 5},
	{"Grade 8 Science - Biology", "science - biology", 8},
	{"Grade 10 History - World War II", "history - World War II", 10},
	{"Grade 3 English - Nouns", "English - nouns", 3},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Print free-text exam sheets generated by Gemini",
	Long: "Generates exam questions for one subject, or for four sample subjects when\n" +
		"--subject is not given. GEMINI_API_KEY must be set.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if config.APIKey(config.GeminiAPIKey)() == "" {
			return domain.NewConfigurationError("GEMINI_API_KEY")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetInt("grade")
		count, _ := cmd.Flags().GetInt("count")
		model, _ := cmd.Flags().GetString("model")

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if model == "" {
			model = cfg.LLM.GeminiModel
		}

		var opts []quizgen.Option
		if geminiFactory != nil {
			opts = append(opts, quizgen.WithModelFactory(geminiFactory))
		}
		gen := quizgen.NewGeminiSheetGenerator(config.APIKey(config.GeminiAPIKey), model, logger.Get(), opts...)

		examples := sheetExamples
		if subject != "" {
			examples = []sheetExample{{title: fmt.Sprintf("Grade %d %s", grade, subject), subject: subject, grade: grade}}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- Exam Question Generator ---")
		for _, ex := range examples {
			fmt.Fprintf(out, "\n--- %s ---\n", ex.title)

			questions, err := gen.GenerateQuestions(cmd.Context(), domain.ExamRequest{
				ClassName:    ex.subject,
				GradeLevel:   ex.grade,
				NumQuestions: count,
			})
			if err != nil {
				// Provider failures print nothing for this subject; the next one still runs.
				fmt.Fprintf(cmd.ErrOrStderr(), "Error generating questions: %v\n", err)
				continue
			}
			for i, q := range questions {
				fmt.Fprintf(out, "Question %d:\n%s\n\n", i+1, q)
			}
		}
		return nil
	},
}

func init() {
	sheetCmd.Flags().String("subject", "", "Subject to generate questions for (default: four sample subjects)")
	sheetCmd.Flags().Int("grade", 5, "Grade level used with --subject")
	sheetCmd.Flags().Int("count", domain.DefaultNumQuestions, "Number of questions per subject")
	sheetCmd.Flags().String("model", "", "Gemini model (default from config)")
}
