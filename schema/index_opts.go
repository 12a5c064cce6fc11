package schema

import (
	"encoding/json"
	"fmt"

	"github.com/ninggf/folio4go/tokenizer"
)

// FieldIndexOpts is the resolved indexing configuration of one field.
// It is built once per field definition and is read-only afterwards.
type FieldIndexOpts struct {
	// terms are also added to the infobase (enclosing) index
	allowInfobaseIndexing bool
	// SW, recorded but no stop words are removed
	useStopWords bool
	// DT, never set; two-digit years are not re-windowed
	yearWindowNormalization bool
	// PR, recorded but hits are not restricted to one application
	proximityConstrained bool
	// not reachable from flags
	mergeTouchingApplications bool
	analyzer                  tokenizer.Kind
}

// AllowInfobaseIndexing reports whether the field's terms are also indexed
// in the whole-document index.
func (o *FieldIndexOpts) AllowInfobaseIndexing() bool { return o.allowInfobaseIndexing }

// UseStopWords reports whether the SW option was given.
func (o *FieldIndexOpts) UseStopWords() bool { return o.useStopWords }

// YearWindowNormalization is always false.
func (o *FieldIndexOpts) YearWindowNormalization() bool { return o.yearWindowNormalization }

// ProximityConstrained reports whether the PR option was given.
func (o *FieldIndexOpts) ProximityConstrained() bool { return o.proximityConstrained }

// MergeTouchingApplications is always false.
func (o *FieldIndexOpts) MergeTouchingApplications() bool { return o.mergeTouchingApplications }

// AnalyzerKind is tokenizer.Term or tokenizer.Phrase.
func (o *FieldIndexOpts) AnalyzerKind() tokenizer.Kind { return o.analyzer }

func (o *FieldIndexOpts) String() string {
	return fmt.Sprintf("analyzer:%s, infobase:%t, stop_words:%t, proximity:%t",
		o.analyzer, o.allowInfobaseIndexing, o.useStopWords, o.proximityConstrained)
}

// MarshalJSON encodes every option, inert ones included
func (o *FieldIndexOpts) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AllowInfobaseIndexing     bool           `json:"allow_infobase_indexing"`
		UseStopWords              bool           `json:"use_stop_words"`
		YearWindowNormalization   bool           `json:"year_window_normalization"`
		ProximityConstrained      bool           `json:"proximity_constrained"`
		MergeTouchingApplications bool           `json:"merge_touching_applications"`
		Analyzer                  tokenizer.Kind `json:"analyzer"`
	}{
		o.allowInfobaseIndexing,
		o.useStopWords,
		o.yearWindowNormalization,
		o.proximityConstrained,
		o.mergeTouchingApplications,
		o.analyzer,
	})
}

// Resolver turns Folio indexing option lists into FieldIndexOpts.
// It holds no state besides its matcher and may be shared.
type Resolver struct {
	match Matcher
}

var defaultResolver = &Resolver{match: MatcherFunc(FastMatches)}

// NewResolver creates a resolver that recognises option codes with m.
// A nil m means FastMatches.
func NewResolver(m Matcher) *Resolver {
	if m == nil {
		return defaultResolver
	}
	return &Resolver{match: m}
}

// ResolveFromFlags resolves flags with FastMatches.
func ResolveFromFlags(flags []string) *FieldIndexOpts {
	return defaultResolver.Resolve(flags)
}

// Resolve builds the configuration for one field from its option tokens.
//
// Tokens are applied in order and a later option overrides an earlier one,
// so "TF,PF" gives a phrase field and "TE,NO" keeps terms out of the
// infobase. An empty list means Folio's default (TF,TE). A non-empty list
// without TE leaves the infobase index off. Unknown tokens are ignored.
func (r *Resolver) Resolve(flags []string) *FieldIndexOpts {
	opts := &FieldIndexOpts{}
	analyzerSet := false

	if len(flags) == 0 {
		opts.allowInfobaseIndexing = true
	}

	for _, s := range flags {
		if r.match.Matches(FLAG_TERM_FIELD, s) {
			opts.analyzer = tokenizer.Term
			analyzerSet = true
		}
		if r.match.Matches(FLAG_PHRASE_FIELD, s) {
			opts.analyzer = tokenizer.Phrase
			analyzerSet = true
		}
		if r.match.Matches(FLAG_TERM_ENCLOSING, s) {
			opts.allowInfobaseIndexing = true
		}
		if r.match.Matches(FLAG_NOT_INDEXED, s) {
			opts.allowInfobaseIndexing = false
		}
		if r.match.Matches(FLAG_PROXIMITY, s) {
			opts.proximityConstrained = true
		}
		if r.match.Matches(FLAG_DATE_WINDOW, s) {
			opts.yearWindowNormalization = false
		}
		// FLAG_FAST_PHRASE needs no handling, fast phrase search is always on
		if r.match.Matches(FLAG_STOP_WORDS, s) {
			opts.useStopWords = true
		}
	}

	if !analyzerSet {
		opts.analyzer = tokenizer.Term
	}
	return opts
}

// FromAnalyzer builds a configuration that only selects the analyzer kind
// of a; every other option stays off. A nil analyzer selects Term.
func FromAnalyzer(a tokenizer.Tokenizer) *FieldIndexOpts {
	opts := &FieldIndexOpts{analyzer: tokenizer.Term}
	if a != nil && a.Kind() == tokenizer.Phrase {
		opts.analyzer = tokenizer.Phrase
	}
	return opts
}
