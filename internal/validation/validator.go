package validation

import (
	"examgen/internal/domain"
)

// Validator provides request validation functionality
type Validator struct {
	maxNumQuestions int
}

// NewValidator creates a new validator instance. maxNumQuestions caps the
// requested question count; 0 leaves it unbounded.
func NewValidator(maxNumQuestions int) *Validator {
	if maxNumQuestions < 0 {
		maxNumQuestions = 0
	}
	return &Validator{maxNumQuestions: maxNumQuestions}
}

// ValidateExamRequest validates an exam request after defaults are applied.
// Grade level and free-text fields are passed to the provider as given.
func (v *Validator) ValidateExamRequest(req domain.ExamRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !req.Difficulty.IsValid() {
		errors = append(errors, domain.NewOneOfError("difficulty", string(req.Difficulty),
			string(domain.DifficultyEasy), string(domain.DifficultyMedium), string(domain.DifficultyHard)))
	}

	switch {
	case req.NumQuestions < 1:
		errors = append(errors, domain.NewBelowMinimumError("numQuestions", req.NumQuestions, 1))
	case v.maxNumQuestions > 0 && req.NumQuestions > v.maxNumQuestions:
		errors = append(errors, domain.NewOutOfRangeError("numQuestions", req.NumQuestions, 1, v.maxNumQuestions))
	}

	return errors
}
