package generator

import (
	"fmt"

	"github.com/vytor/lecturedeck/internal/models"
)

const SystemPrompt = `You are an academic question generator. You ONLY use the provided transcript text
as your knowledge source. You must NEVER introduce facts, concepts, or terminology
that do not appear in the transcript. Keep academic tone. Avoid trivial or
yes/no questions.`

const flashcardShape = `{
  "flashcards": [
    {
      "front": "string",
      "back": "string",
      "source_ref": "string"
    }
  ]
}`

const flashcardRules = `- source_ref must point to a specific transcript section/paragraph.
- front and back must be grounded in transcript wording.
- Do not include markdown.`

const questionShape = `{
  "questions": [
    {
      "question": "string",
      "options": {
        "A": "string",
        "B": "string",
        "C": "string",
        "D": "string"
      },
      "correct": "A|B|C|D",
      "explanation": "string",
      "source_ref": "string"
    }
  ]
}`

const questionRules = `- Exactly 4 options per question.
- One and only one correct option.
- explanation must cite transcript-grounded reasoning.
- source_ref must point to a specific transcript section/paragraph.
- Do not include markdown.`

// UserPrompt builds the per-request prompt carrying the JSON contract for req.Kind.
func UserPrompt(req Request) string {
	noun, shape, rules := "flashcards", flashcardShape, flashcardRules
	if req.Kind == models.KindMCQ {
		noun, shape, rules = "multiple-choice questions", questionShape, questionRules
	}

	return fmt.Sprintf(`Generate %d %s from the following transcript at %s difficulty.

Return STRICT JSON with this exact shape:
%s

Rules:
%s

Transcript: %s`, req.Count, noun, req.Difficulty, shape, rules, req.TranscriptText)
}
