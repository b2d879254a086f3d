package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"examgen/internal/adapter/quizgen"
	"examgen/internal/domain"
	"examgen/internal/handler"
	"examgen/internal/middleware"
	"examgen/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// --- Manual Mocks ---

type MockExamService struct {
	GenerateQuestionSetFunc func(ctx context.Context, req domain.ExamRequest) ([]string, error)
	CacheStatusFunc         func(ctx context.Context) string
}

func (m *MockExamService) GenerateQuestionSet(ctx context.Context, req domain.ExamRequest) ([]string, error) {
	if m.GenerateQuestionSetFunc != nil {
		return m.GenerateQuestionSetFunc(ctx, req)
	}
	panic("MockExamService.GenerateQuestionSetFunc not implemented")
}

func (m *MockExamService) CacheStatus(ctx context.Context) string {
	if m.CacheStatusFunc != nil {
		return m.CacheStatusFunc(ctx)
	}
	panic("MockExamService.CacheStatusFunc not implemented")
}

// replyModel answers every prompt with a fixed reply.
type replyModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *replyModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, tc.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *replyModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func factory(m llms.Model) quizgen.ModelFactory {
	return func(context.Context, string, string) (llms.Model, error) { return m, nil }
}

func key(k string) func() string { return func() string { return k } }

func newTestApp(svc service.ExamService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	handler.RegisterRoutes(app, handler.NewExamHandler(svc), middleware.NewValidationMiddleware(0))
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

const mistralReply = `[
  {"question": "What is 12 x 7?", "type": "multiple_choice", "options": ["74", "84", "96", "68"], "correct_answer": "84"},
  {"question": "Explain photosynthesis.", "type": "open_ended", "correct_answer": "Plants turn light into food."},
  {"question": "What is 9 x 9?", "type": "short_answer", "correct_answer": "81"}
]`

func TestExamHandler_MistralReturnsFirstQuestion(t *testing.T) {
	mistral := &replyModel{reply: mistralReply}
	svc := service.NewExamService([]domain.QuestionGenerator{
		quizgen.NewMistralGenerator(key("m-key"), "mistral-large-latest", zap.NewNop(), quizgen.WithModelFactory(factory(mistral))),
	}, nil, nil)
	app := newTestApp(svc)

	status, body := post(t, app, `{"className":"math","topic":"Multiplication","gradeLevel":5,"numQuestions":3,"difficulty":"easy","platform":"mistral"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"question": "What is 12 x 7?", "type": "multiple_choice", "options": ["74", "84", "96", "68"], "correct_answer": "84"}`, body)
	require.Len(t, mistral.prompts, 1)
	assert.Contains(t, mistral.prompts[0], "Multiplication")
}

func TestExamHandler_PlatformDefaultsToGemini(t *testing.T) {
	reply := `[{"question": "Name a prime number.", "type": "short_answer", "correct_answer": "2"}]`

	for _, body := range []string{`{"topic":"Primes"}`, `{"topic":"Primes","platform":"gemini"}`, `{"topic":"Primes","platform":"unknown"}`, ``} {
		gemini := &replyModel{reply: reply}
		mistral := &replyModel{reply: mistralReply}
		svc := service.NewExamService([]domain.QuestionGenerator{
			quizgen.NewGeminiGenerator(key("g-key"), "gemini-2.5-flash", zap.NewNop(), quizgen.WithModelFactory(factory(gemini))),
			quizgen.NewMistralGenerator(key("m-key"), "mistral-large-latest", zap.NewNop(), quizgen.WithModelFactory(factory(mistral))),
		}, nil, nil)

		status, got := post(t, newTestApp(svc), body)

		assert.Equal(t, fiber.StatusOK, status, body)
		assert.JSONEq(t, reply, got, body)
		assert.Len(t, gemini.prompts, 1, body)
		assert.Empty(t, mistral.prompts, body)
	}
}

func TestExamHandler_AIModelAlias(t *testing.T) {
	var got domain.ExamRequest
	svc := &MockExamService{GenerateQuestionSetFunc: func(_ context.Context, req domain.ExamRequest) ([]string, error) {
		got = req
		return []string{`{"question":"q","type":"short_answer","correct_answer":"a"}`}, nil
	}}

	status, _ := post(t, newTestApp(svc), `{"aiModel":"mistral","numQuestions":4}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.PlatformMistral, got.Platform)
	assert.Equal(t, 4, got.NumQuestions)
	assert.Equal(t, domain.DifficultyMedium, got.Difficulty)
}

func TestExamHandler_NonJSONReplyIsBadRequest(t *testing.T) {
	gemini := &replyModel{reply: "Here are your questions:\n\n1. What is 2 + 2?"}
	svc := service.NewExamService([]domain.QuestionGenerator{
		quizgen.NewGeminiGenerator(key("g-key"), "gemini-2.5-flash", zap.NewNop(), quizgen.WithModelFactory(factory(gemini))),
	}, nil, nil)

	status, body := post(t, newTestApp(svc), `{"platform":"gemini"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Failed to parse AI response", resp["error"])
	assert.NotEmpty(t, resp["details"])
}

func TestExamHandler_EmptyResultIsBadGateway(t *testing.T) {
	tests := []struct {
		name    string
		svc     *MockExamService
		details string
	}{
		{
			name: "provider failure",
			svc: &MockExamService{GenerateQuestionSetFunc: func(_ context.Context, req domain.ExamRequest) ([]string, error) {
				return []string{}, domain.NewLLMServiceError(req.Platform, errors.New("quota exceeded"))
			}},
			details: "quota exceeded",
		},
		{
			name: "empty reply",
			svc: &MockExamService{GenerateQuestionSetFunc: func(context.Context, domain.ExamRequest) ([]string, error) {
				return nil, nil
			}},
			details: "returned no questions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, newTestApp(tt.svc), `{}`)

			assert.Equal(t, fiber.StatusBadGateway, status)
			var resp map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, "No questions generated", resp["error"])
			assert.Contains(t, resp["details"], tt.details)
		})
	}
}

func TestExamHandler_MissingKeyIsServerError(t *testing.T) {
	gemini := &replyModel{reply: "[]"}
	svc := service.NewExamService([]domain.QuestionGenerator{
		quizgen.NewGeminiGenerator(key(""), "gemini-2.5-flash", zap.NewNop(), quizgen.WithModelFactory(factory(gemini))),
	}, nil, nil)

	status, body := post(t, newTestApp(svc), `{}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "Provider not configured")
	assert.Contains(t, body, "GEMINI_API_KEY")
	assert.Empty(t, gemini.prompts)
}

func TestExamHandler_ValidationErrors(t *testing.T) {
	svc := &MockExamService{}
	app := newTestApp(svc)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad difficulty", `{"difficulty":"extreme"}`, "difficulty"},
		{"zero questions", `{"numQuestions":0}`, "numQuestions"},
		{"negative questions", `{"numQuestions":-2}`, "numQuestions"},
		{"grade not a number", `{"gradeLevel":"ten"}`, "gradeLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, app, tt.body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			var resp middleware.ValidationErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, string(domain.CodeValidation), resp.Code)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.field, resp.Errors[0].Field)
		})
	}
}

func TestExamHandler_ForwardsLargeGradeAndCount(t *testing.T) {
	calls := 0
	var got domain.ExamRequest
	svc := &MockExamService{GenerateQuestionSetFunc: func(_ context.Context, req domain.ExamRequest) ([]string, error) {
		calls++
		got = req
		return []string{`[{"question":"q","type":"short_answer","correct_answer":"a"}]`}, nil
	}}

	status, _ := post(t, newTestApp(svc), `{"gradeLevel":13,"numQuestions":60}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 13, got.GradeLevel)
	assert.Equal(t, 60, got.NumQuestions)
}

func TestExamHandler_ConfiguredQuestionCap(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.NewExamHandler(&MockExamService{}), middleware.NewValidationMiddleware(25))

	status, body := post(t, app, `{"numQuestions":26}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "must be between 1 and 25")
}

func TestExamHandler_MalformedBody(t *testing.T) {
	status, body := post(t, newTestApp(&MockExamService{}), `{"topic":`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, string(domain.CodeInvalidInput))
}

func TestExamHandler_IndexAndHealth(t *testing.T) {
	app := newTestApp(&MockExamService{CacheStatusFunc: func(context.Context) string { return "disabled" }})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok","cache":"disabled"}`, string(raw))
}
