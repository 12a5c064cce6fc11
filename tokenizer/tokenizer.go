package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects how a field application is broken into index terms.
type Kind uint8

const (
	// Term indexes every word of the application separately.
	Term Kind = iota
	// Phrase indexes the whole application as a single term.
	Phrase
)

func (k Kind) String() string {
	switch k {
	case Phrase:
		return "phrase"
	default:
		return "term"
	}
}

// MarshalText encodes the kind as "term" or "phrase"
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps "term" and "phrase" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "term":
		return Term, nil
	case "phrase":
		return Phrase, nil
	}
	return Term, fmt.Errorf("unknown analyzer kind %q", s)
}

// Tokenizer used by indexer and searcher
type Tokenizer interface {
	GetTokens(text string) []string
	Kind() Kind
}

// TermTokenizer splits text on everything that is not a letter or digit
type TermTokenizer struct{}

// GetTokens returns the lowercased words of text
func (TermTokenizer) GetTokens(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return nil
	}
	lower := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return words
}

// Kind of TermTokenizer is Term
func (TermTokenizer) Kind() Kind {
	return Term
}

// PhraseTokenizer keeps a whole application as one term.
// The text is lowercased, inner whitespace runs collapse to a single space.
type PhraseTokenizer struct{}

// GetTokens returns at most one token
func (PhraseTokenizer) GetTokens(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	return []string{cases.Lower(language.Und).String(strings.Join(words, " "))}
}

// Kind of PhraseTokenizer is Phrase
func (PhraseTokenizer) Kind() Kind {
	return Phrase
}
