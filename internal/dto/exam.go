package dto

import (
	"strings"

	"examgen/internal/domain"
)

// GenerateExamRequest is the body of POST /. Every field is optional.
// @Description Exam generation parameters
type GenerateExamRequest struct {
	ClassName    *string `json:"className" example:"math"`
	Topic        *string `json:"topic" example:"Fractions"`
	GradeLevel   *int    `json:"gradeLevel" example:"5"`
	NumQuestions *int    `json:"numQuestions" example:"10"`
	Difficulty   *string `json:"difficulty" example:"medium" enums:"easy,medium,hard"`
	Platform     *string `json:"platform" example:"gemini" enums:"gemini,mistral,openai,ollama"`
	// AIModel is what the bundled front end sends; platform wins when both are set.
	AIModel *string `json:"aiModel,omitempty" swaggerignore:"true"`
}

// ToDomain fills in defaults for missing fields.
func (r GenerateExamRequest) ToDomain() domain.ExamRequest {
	req := domain.ExamRequest{
		NumQuestions: domain.DefaultNumQuestions,
		Difficulty:   domain.DefaultDifficulty,
	}
	if r.ClassName != nil {
		req.ClassName = *r.ClassName
	}
	if r.Topic != nil {
		req.Topic = *r.Topic
	}
	if r.GradeLevel != nil {
		req.GradeLevel = *r.GradeLevel
	}
	if r.NumQuestions != nil {
		req.NumQuestions = *r.NumQuestions
	}
	if r.Difficulty != nil && strings.TrimSpace(*r.Difficulty) != "" {
		req.Difficulty = domain.Difficulty(strings.ToLower(strings.TrimSpace(*r.Difficulty)))
	}

	platform := ""
	switch {
	case r.Platform != nil:
		platform = *r.Platform
	case r.AIModel != nil:
		platform = *r.AIModel
	}
	req.Platform = domain.ParsePlatform(platform)
	return req
}

// ErrorResponse is returned when generation fails.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}
