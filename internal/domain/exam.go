package domain

import (
	"context"
	"strings"
)

// Platform selects the LLM provider that generates a question set.
type Platform string

const (
	PlatformGemini  Platform = "gemini"
	PlatformMistral Platform = "mistral"
	PlatformOpenAI  Platform = "openai"
	PlatformOllama  Platform = "ollama"
)

// ParsePlatform maps a request value to a Platform. Anything unrecognized,
// including the empty string, selects Gemini.
func ParsePlatform(s string) Platform {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformMistral, PlatformOpenAI, PlatformOllama:
		return p
	default:
		return PlatformGemini
	}
}

// Difficulty of the generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const (
	DefaultNumQuestions = 10
	DefaultDifficulty   = DifficultyMedium
)

// ExamRequest describes the exam a caller wants generated.
type ExamRequest struct {
	ClassName    string
	Topic        string
	GradeLevel   int
	NumQuestions int
	Difficulty   Difficulty
	Platform     Platform
}

// QuestionType is the kind of an ExamQuestion.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeOpenEnded      QuestionType = "open_ended"
)

// ExamQuestion is one question as emitted by a provider. Options is only
// present for multiple choice questions.
type ExamQuestion struct {
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
}

// QuestionGenerator produces a question set for one platform. Each element of
// the returned slice is a JSON text blob.
//
// A missing API key yields a configuration error before any network call.
// Provider failures yield an empty slice together with the wrapped error.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req ExamRequest) ([]string, error)
	Platform() Platform
}
