package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vytor/lecturedeck/internal/models"
)

type rawBatch struct {
	Flashcards []json.RawMessage `json:"flashcards"`
	Questions  []json.RawMessage `json:"questions"`
}

// ParseBatch decodes a provider response body for kind. Each candidate is
// decoded on its own so one bad item does not discard its siblings.
// A body that is not a JSON object is a MalformedResponse.
func ParseBatch(kind models.SetKind, content string) (*Batch, error) {
	content = stripFences(content)
	if content == "" {
		return nil, newError(MalformedResponse, fmt.Errorf("empty response"))
	}

	var raw rawBatch
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, newError(MalformedResponse, err)
	}

	batch := &Batch{}
	switch kind {
	case models.KindFlashcard:
		for _, item := range raw.Flashcards {
			var c FlashcardCandidate
			if err := json.Unmarshal(item, &c); err != nil {
				batch.Discarded++
				continue
			}
			batch.Flashcards = append(batch.Flashcards, c)
		}
	case models.KindMCQ:
		for _, item := range raw.Questions {
			var c QuestionCandidate
			if err := json.Unmarshal(item, &c); err != nil {
				batch.Discarded++
				continue
			}
			batch.Questions = append(batch.Questions, c)
		}
	default:
		return nil, fmt.Errorf("unknown set kind %q", kind)
	}
	return batch, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
