package validation

import (
	"strings"
	"unicode"

	"github.com/vytor/lecturedeck/internal/generator"
)

// minTokenLen is the shortest token that counts toward grounding.
const minTokenLen = 4

// TokenSet is a set of normalized tokens.
type TokenSet map[string]struct{}

// Tokenize lowercases text, turns every character other than a-z, 0-9 and
// whitespace into a space, splits on whitespace and drops tokens shorter than
// four characters.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, lower)

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// NewTokenSet tokenizes text into a set.
func NewTokenSet(text string) TokenSet {
	set := TokenSet{}
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// Contains reports whether tok is in the set.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// IsGrounded reports whether any token of candidateText appears in the
// transcript tokens. The check is purely lexical.
func IsGrounded(candidateText string, transcript TokenSet) bool {
	if len(transcript) == 0 {
		return false
	}
	for _, tok := range Tokenize(candidateText) {
		if transcript.Contains(tok) {
			return true
		}
	}
	return false
}

// FlashcardText is the text a flashcard candidate is grounded on.
func FlashcardText(c generator.FlashcardCandidate) string {
	return strings.Join([]string{c.Front, c.Back, c.SourceRef}, " ")
}

// QuestionText is the text a question candidate is grounded on.
func QuestionText(c generator.QuestionCandidate) string {
	return strings.Join([]string{
		c.Question,
		c.Options.A, c.Options.B, c.Options.C, c.Options.D,
		c.Explanation,
		c.SourceRef,
	}, " ")
}
