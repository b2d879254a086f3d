package quizgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"examgen/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/mistral"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ModelFactory builds the langchaingo model used for a single call.
type ModelFactory func(ctx context.Context, apiKey, model string) (llms.Model, error)

// Generator implements domain.QuestionGenerator on top of a langchaingo model.
// The model is created per call, after the API key has been checked.
type Generator struct {
	platform domain.Platform
	keyEnv   string
	apiKey   func() string
	model    string
	factory  ModelFactory
	prompt   func(domain.ExamRequest) string
	parse    func(raw string, limit int) ([]string, error)
	logger   *zap.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithModelFactory replaces the provider client constructor.
func WithModelFactory(f ModelFactory) Option {
	return func(g *Generator) { g.factory = f }
}

// NewGeminiGenerator splits the reply on blank lines.
func NewGeminiGenerator(apiKey func() string, modelName string, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		platform: domain.PlatformGemini,
		keyEnv:   "GEMINI_API_KEY",
		apiKey:   apiKey,
		model:    modelName,
		factory:  newGoogleAIModel,
		prompt:   BuildGeminiPrompt,
		parse: func(raw string, limit int) ([]string, error) {
			return SplitBlankLines(raw, limit), nil
		},
		logger: logger,
	}
	return g.apply(opts)
}

// NewMistralGenerator expects the reply to be a JSON array.
func NewMistralGenerator(apiKey func() string, modelName string, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		platform: domain.PlatformMistral,
		keyEnv:   "MISTRAL_API_KEY",
		apiKey:   apiKey,
		model:    modelName,
		factory:  newMistralModel,
		prompt:   BuildJSONArrayPrompt,
		parse:    ParseJSONArray,
		logger:   logger,
	}
	return g.apply(opts)
}

// NewGeminiSheetGenerator renders free-text exam sheets. ClassName carries the
// subject; Topic is ignored.
func NewGeminiSheetGenerator(apiKey func() string, modelName string, logger *zap.Logger, opts ...Option) *Generator {
	g := NewGeminiGenerator(apiKey, modelName, logger)
	g.prompt = func(req domain.ExamRequest) string {
		return BuildSheetPrompt(req.ClassName, req.GradeLevel, req.NumQuestions)
	}
	return g.apply(opts)
}

// NewOpenAIGenerator uses the same JSON-array prompt and parser as Mistral.
func NewOpenAIGenerator(apiKey func() string, modelName string, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		platform: domain.PlatformOpenAI,
		keyEnv:   "OPENAI_API_KEY",
		apiKey:   apiKey,
		model:    modelName,
		factory:  NewOpenAIModel,
		prompt:   BuildJSONArrayPrompt,
		parse:    ParseJSONArray,
		logger:   logger,
	}
	return g.apply(opts)
}

// NewOllamaGenerator talks to a local Ollama server and needs no API key.
func NewOllamaGenerator(serverURL, modelName string, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		platform: domain.PlatformOllama,
		model:    modelName,
		factory:  newOllamaModel(serverURL, &http.Client{Timeout: 120 * time.Second}),
		prompt:   BuildJSONArrayPrompt,
		parse:    ParseJSONArray,
		logger:   logger,
	}
	return g.apply(opts)
}

func (g *Generator) apply(opts []Option) *Generator {
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Platform reports which provider this generator calls.
func (g *Generator) Platform() domain.Platform {
	return g.platform
}

// GenerateQuestions implements domain.QuestionGenerator.
func (g *Generator) GenerateQuestions(ctx context.Context, req domain.ExamRequest) ([]string, error) {
	var key string
	if g.keyEnv != "" {
		if key = g.apiKey(); key == "" {
			return nil, domain.NewConfigurationError(g.keyEnv)
		}
	}

	log := g.logger.With(zap.String("platform", string(g.platform)), zap.String("model", g.model))

	llm, err := g.factory(ctx, key, g.model)
	if err != nil {
		log.Error("Failed to create LLM client", zap.Error(err))
		return []string{}, domain.NewLLMServiceError(g.platform, fmt.Errorf("create client: %w", err))
	}

	prompt := g.prompt(req)
	log.Debug("Sending prompt to provider", zap.String("prompt", prompt))

	start := time.Now()
	raw, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt)
	if err != nil {
		log.Error("Error generating questions", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return []string{}, domain.NewLLMServiceError(g.platform, err)
	}
	log.Debug("Raw provider reply", zap.String("raw_response", raw))

	questions, err := g.parse(raw, req.NumQuestions)
	if err != nil {
		log.Error("Error parsing provider reply", zap.Error(err), zap.String("raw_response", raw))
		return []string{}, domain.NewLLMServiceError(g.platform, err)
	}

	log.Info("Generated questions",
		zap.Int("num_requested", req.NumQuestions),
		zap.Int("num_returned", len(questions)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return questions, nil
}

func newGoogleAIModel(ctx context.Context, apiKey, model string) (llms.Model, error) {
	llm, err := googleai.New(ctx, googleai.WithAPIKey(apiKey), googleai.WithDefaultModel(model))
	if err != nil {
		return nil, err
	}
	return llm, nil
}

func newMistralModel(_ context.Context, apiKey, model string) (llms.Model, error) {
	llm, err := mistral.New(mistral.WithAPIKey(apiKey), mistral.WithModel(model))
	if err != nil {
		return nil, err
	}
	return llm, nil
}

// NewOpenAIModel is also used by the CLI for one-shot prompts.
func NewOpenAIModel(_ context.Context, apiKey, model string) (llms.Model, error) {
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, err
	}
	return llm, nil
}

func newOllamaModel(serverURL string, httpClient *http.Client) ModelFactory {
	return func(_ context.Context, _ string, model string) (llms.Model, error) {
		llm, err := ollama.New(
			ollama.WithServerURL(serverURL),
			ollama.WithModel(model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
}

var _ domain.QuestionGenerator = (*Generator)(nil)
