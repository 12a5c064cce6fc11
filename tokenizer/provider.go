package tokenizer

import "sync"

// Provider hands out the tokenizer for an analyzer kind.
// Returned tokenizers are shared and must be safe for concurrent use.
type Provider interface {
	Tokenizer(kind Kind) Tokenizer
}

type provider struct {
	term   Tokenizer
	phrase Tokenizer
}

var (
	defaultProvider Provider
	defaultOnce     sync.Once
)

// DefaultProvider returns the process-wide provider backed by
// TermTokenizer and PhraseTokenizer. It is built on first use.
func DefaultProvider() Provider {
	defaultOnce.Do(func() {
		defaultProvider = &provider{TermTokenizer{}, PhraseTokenizer{}}
	})
	return defaultProvider
}

// NewProvider creates a provider with your own tokenizers.
// A nil argument falls back to the default tokenizer of that kind.
func NewProvider(term, phrase Tokenizer) Provider {
	if term == nil {
		term = TermTokenizer{}
	}
	if phrase == nil {
		phrase = PhraseTokenizer{}
	}
	return &provider{term, phrase}
}

// Tokenizer returns the phrase tokenizer for Phrase and the term tokenizer otherwise
func (p *provider) Tokenizer(kind Kind) Tokenizer {
	if kind == Phrase {
		return p.phrase
	}
	return p.term
}
