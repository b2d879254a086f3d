package middleware

import (
	"bytes"
	"encoding/json"
	"errors"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const validatedExamRequestKey = "validated_exam_request"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance.
// maxNumQuestions of 0 leaves the question count unbounded.
func NewValidationMiddleware(maxNumQuestions int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(maxNumQuestions),
	}
}

// ValidateExamRequest decodes the POST / body, applies defaults and checks
// the ranges. An empty body counts as {}.
func (vm *ValidationMiddleware) ValidateExamRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GenerateExamRequest
		if raw := bytes.TrimSpace(c.Body()); len(raw) > 0 {
			if err := c.App().Config().JSONDecoder(raw, &body); err != nil {
				var typeErr *json.UnmarshalTypeError
				if errors.As(err, &typeErr) && typeErr.Field != "" {
					return domain.ValidationErrors{domain.NewInvalidFormatError(typeErr.Field, typeErr.Value)}
				}
				return domain.NewInvalidInputError("request body must be a JSON object").
					WithContext("reason", err.Error())
			}
		}

		req := body.ToDomain()
		if errs := vm.validator.ValidateExamRequest(req); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}

		c.Locals(validatedExamRequestKey, req)
		return c.Next()
	}
}

// ExamRequestFrom returns the request stored by ValidateExamRequest.
func ExamRequestFrom(c *fiber.Ctx) (domain.ExamRequest, bool) {
	req, ok := c.Locals(validatedExamRequestKey).(domain.ExamRequest)
	return req, ok
}
