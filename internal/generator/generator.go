package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/vytor/lecturedeck/internal/models"
)

// Generator produces candidate study items from transcript text.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Batch, error)
}

type Request struct {
	TranscriptText string
	Count          int
	Difficulty     models.Difficulty
	Kind           models.SetKind
}

type FlashcardCandidate struct {
	Front     string `json:"front"`
	Back      string `json:"back"`
	SourceRef string `json:"source_ref"`
}

type QuestionCandidate struct {
	Question    string         `json:"question"`
	Options     models.Options `json:"options"`
	Correct     string         `json:"correct"`
	Explanation string         `json:"explanation"`
	SourceRef   string         `json:"source_ref"`
}

// Batch holds the candidates decoded from one provider response.
// Undecodable candidates are counted in Discarded and dropped.
type Batch struct {
	Flashcards []FlashcardCandidate
	Questions  []QuestionCandidate
	Discarded  int
}

// Len returns the number of candidates of either kind.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Flashcards) + len(b.Questions)
}

// Class categorizes provider failures.
type Class string

const (
	MissingCredentials Class = "missing_credentials"
	ProviderRejected   Class = "provider_rejected"
	MalformedResponse  Class = "malformed_response"
)

type Error struct {
	Class Class
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator %s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("generator %s", e.Class)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(class Class, err error) *Error {
	return &Error{Class: class, Err: err}
}

// ClassOf returns the failure class of err, if it is a generator error.
func ClassOf(err error) (Class, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Class, true
	}
	return "", false
}
