package quizgen

import (
	"fmt"
	"strings"

	"examgen/internal/domain"
)

const geminiExamples = `Here are some examples of what I'm looking for:

If class is "math", topic is "Division" and grade is 12:
[
  {
    "question": "When the polynomial P(x) = 2x^4 - 3x^3 + ax^2 - 8x + 1 is divided by (x^2 + 1), the remainder is 3x - 5. What is the value of 'a'?",
    "type": "short_answer",
    "correct_answer": "-2"
  },
  {
    "question": "When a polynomial P(x) is divided by (2x + 1), the quotient is (x^2 - 3x + 5) and the remainder is -4. Determine the original polynomial P(x).",
    "type": "short_answer",
    "correct_answer": "2x^3 - 5x^2 + 7x + 1"
  }
]

If class is "science", topic is "biology" and grade is 8:
[
  {
    "question": "Name the three essential ingredients (reactants) that plants need to perform photosynthesis.",
    "type": "short_answer",
    "correct_answer": "Carbon dioxide, water, and sunlight (or light energy)"
  },
  {
    "question": "Describe how a significant decrease in the population of producers (like grass) in an ecosystem would likely affect the populations of herbivores and carnivores in that same ecosystem.",
    "type": "open_ended",
    "correct_answer": "Fewer producers means less food for herbivores, so their population declines. With fewer herbivores available as prey, the carnivore population is also likely to decrease."
  }
]`

const mistralExample = `Example:
[
  {
    "question": "What is 12 x 7?",
    "type": "multiple_choice",
    "options": ["74", "84", "96", "68"],
    "correct_answer": "84"
  },
  {
    "question": "Explain the process of photosynthesis.",
    "type": "open_ended",
    "correct_answer": "Photosynthesis is the process by which green plants use sunlight to synthesize food from carbon dioxide and water."
  }
]`

// BuildGeminiPrompt renders the Gemini prompt. Hard exams leave multiple
// choice out of the requested question mix.
func BuildGeminiPrompt(req domain.ExamRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d exam questions for a Grade %d on %s for %s class.\n\n",
		req.NumQuestions, req.GradeLevel, req.Topic, req.ClassName)
	b.WriteString("The questions should be challenging but appropriate for the specified grade level.\n")
	fmt.Fprintf(&b, "Adjust the difficulty level to %q.\n", string(req.Difficulty))
	b.WriteString("Ensure that the questions are unique and not repetitive.\n")
	if req.Difficulty == domain.DifficultyHard {
		b.WriteString("Include a mix of question types if applicable (e.g., fill-in-the-blank, short answer).\n\n")
	} else {
		b.WriteString("Include a mix of question types if applicable (e.g., fill-in-the-blank, short answer, multiple choice). ")
		b.WriteString("For multiple-choice questions, provide 4 options (A, B, C, D) and indicate the correct answer.\n\n")
	}

	b.WriteString("Only return the questions without any additional text or explanation.\n")
	b.WriteString("Generate questions in JSON format and each question should include:\n")
	b.WriteString("a \"question\" string,\n")
	b.WriteString("a \"type\" field (\"multiple_choice\", \"short_answer\", or \"open_ended\"),\n")
	b.WriteString("if type is \"multiple_choice\", an \"options\" array with 4 choices labeled A) to D),\n")
	b.WriteString("a \"correct_answer\" string.\n")
	b.WriteString("Return only the JSON array, do not include any explanations or markdown code block (like ```json).\n\n")

	b.WriteString(geminiExamples)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Now, generate %d questions for Grade %d on %s for %s class.\n",
		req.NumQuestions, req.GradeLevel, req.Topic, req.ClassName)

	return b.String()
}

// BuildJSONArrayPrompt renders the prompt used by the providers that answer
// with a bare JSON array (Mistral, OpenAI, Ollama).
func BuildJSONArrayPrompt(req domain.ExamRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d unique exam questions for Grade %d students studying %s in %s.\n\n",
		req.NumQuestions, req.GradeLevel, req.Topic, req.ClassName)
	fmt.Fprintf(&b, "Difficulty level: %s.\n", req.Difficulty)
	b.WriteString("Ensure the questions are diverse and cover various aspects of the topic.\n")
	b.WriteString("Include short-answer and open-ended questions where applicable.\n")
	if req.Difficulty != domain.DifficultyHard {
		b.WriteString("Also, include multiple-choice questions with 4 options (A, B, C, D) and clearly specify the correct answer.\n")
	}

	b.WriteString("\nFormat the output as a JSON array where each question includes:\n")
	b.WriteString("- \"question\": The text of the question.\n")
	b.WriteString("- \"type\": The type of question (\"multiple_choice\", \"short_answer\", \"open_ended\").\n")
	b.WriteString("- \"options\": An array of 4 options (for multiple-choice questions only).\n")
	b.WriteString("- \"correct_answer\": The correct answer (for all question types).\n\n")

	b.WriteString(mistralExample)
	b.WriteString("\n\nGenerate the questions strictly in the specified JSON format without any additional text or explanations.\n")

	return b.String()
}

// BuildSheetPrompt renders the free-text exam sheet prompt used by the CLI.
func BuildSheetPrompt(subject string, gradeLevel, numQuestions int) string {
	return fmt.Sprintf(`Generate %[1]d exam questions for a Grade %[2]d %[3]s class.

The questions should be challenging but appropriate for the specified grade level.
Include a mix of question types if applicable (e.g., multiple choice, fill-in-the-blank, short answer).
For multiple-choice questions, provide 4 options (A, B, C, D) and indicate the correct answer.

Here are some examples of what I'm looking for:

If subject is 'math' and grade is '5' (multiplication):
1. What is 12 x 7?
A) 74
B) 84
C) 96
D) 68
Correct Answer: B

2. A baker bakes 15 batches of cookies, with 12 cookies in each batch. How many cookies did the baker bake in total?
Correct Answer: 180

If subject is 'science' and grade is '8' (biology):
1. Which of the following is the powerhouse of the cell?
A) Nucleus
B) Mitochondria
C) Ribosome
D) Endoplasmic Reticulum
Correct Answer: B

2. Explain the process of photosynthesis in your own words.

Now, generate %[1]d questions for Grade %[2]d %[3]s.
`, numQuestions, gradeLevel, subject)
}
