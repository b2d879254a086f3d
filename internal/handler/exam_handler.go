package handler

import (
	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/logger"
	"examgen/internal/middleware"
	"examgen/internal/service"
	"examgen/internal/validation"
	"examgen/internal/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExamHandler handles the exam generation page and endpoint.
type ExamHandler struct {
	service service.ExamService
	page    []byte
}

// NewExamHandler creates a new ExamHandler instance
func NewExamHandler(service service.ExamService) *ExamHandler {
	return &ExamHandler{
		service: service,
		page:    web.IndexPage(),
	}
}

// Index serves the question generator page.
func (h *ExamHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(h.page)
}

// GenerateQuestions godoc
// @Summary Generate exam questions
// @Description Generates a question set with the selected platform and returns the first generated item decoded as JSON.
// @Tags exam
// @Accept json
// @Produce json
// @Param request body dto.GenerateExamRequest false "Exam parameters"
// @Success 200 {object} domain.ExamQuestion "The first generated item: one question object, or an array of questions when the provider packs the set into one blob"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router / [post]
func (h *ExamHandler) GenerateQuestions(c *fiber.Ctx) error {
	req, ok := middleware.ExamRequestFrom(c)
	if !ok {
		return domain.NewInternalError("exam request was not validated", nil)
	}

	log := logger.Get().With(zap.String("request_id", middleware.RequestID(c)))
	log.Info("Generating exam questions",
		zap.String("class_name", req.ClassName),
		zap.String("topic", req.Topic),
		zap.Int("grade_level", req.GradeLevel),
		zap.Int("num_questions", req.NumQuestions),
		zap.String("difficulty", string(req.Difficulty)),
		zap.String("platform", string(req.Platform)),
	)

	questions, err := h.service.GenerateQuestionSet(c.UserContext(), req)
	switch {
	case domain.HasCode(err, domain.CodeConfiguration):
		log.Error("Provider not configured", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Provider not configured",
			Details: err.Error(),
		})
	case err != nil && !domain.HasCode(err, domain.CodeLLMServiceError):
		return err
	case len(questions) == 0:
		if err == nil {
			err = domain.NewEmptyResultError(req.Platform, nil)
		}
		log.Warn("No questions generated", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error:   "No questions generated",
			Details: err.Error(),
		})
	}

	decoded, err := domain.DecodeQuestionBlob(questions[0])
	if err != nil {
		invalid := domain.NewInvalidResponseError(err)
		log.Warn(invalid.Message, zap.Error(err), zap.String("platform", string(req.Platform)))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   invalid.Message,
			Details: err.Error(),
		})
	}

	if err := validation.CheckQuestionSet(decoded); err != nil {
		log.Warn("Generated questions do not match the expected shape", zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(decoded)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *ExamHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Cache:  h.service.CacheStatus(c.UserContext()),
	})
}
