// Package folio indexes documents into an in-memory infobase using the
// field index options resolved by package schema, and searches it.
package folio

import (
	"fmt"

	"github.com/ninggf/folio4go/schema"
	"github.com/ninggf/folio4go/tokenizer"
)

// Indexer applies the schema's resolved field options to documents
// and writes their terms into an in-memory Index.
type Indexer struct {
	setting  *schema.Setting
	schema   *schema.Schema
	index    *Index
	provider tokenizer.Provider
}

// NewIndexer creates a Indexer from a TOML schema file
func NewIndexer(conf string) (*Indexer, error) {
	setting, err := schema.LoadConf(conf)
	if err != nil {
		return nil, err
	}
	indexer := NewIndexerWithSchema(setting.Schema)
	indexer.setting = setting
	schema.LogInfo("infobase %s: %d fields loaded from %s", setting.Conf.Name, len(setting.Schema.FieldMetas), conf)
	return indexer, nil
}

// NewIndexerWithSchema creates a Indexer for an already loaded schema
func NewIndexerWithSchema(sc *schema.Schema) *Indexer {
	return &Indexer{
		schema:   sc,
		index:    newIndex(),
		provider: tokenizer.DefaultProvider(),
	}
}

// Schema of current indexer hold
func (indexer *Indexer) Schema() *schema.Schema {
	return indexer.schema
}

// Name of the infobase, empty when the indexer was not built from a file
func (indexer *Indexer) Name() string {
	if indexer.setting == nil {
		return ""
	}
	return indexer.setting.Conf.Name
}

// SetTokenizerProvider sets your tokenizers
func (indexer *Indexer) SetTokenizerProvider(provider tokenizer.Provider) {
	if provider != nil {
		indexer.provider = provider
	}
}

// Add document to the index and return its internal number
func (indexer *Indexer) Add(doc *schema.Document) (uint32, error) {
	if doc == nil || doc.ID == "" {
		return 0, schema.ErrMissingDocID
	}

	fieldTerms := make(map[uint8][]string)
	var infobaseTerms []string

	for _, app := range doc.Applications {
		meta, ok := indexer.schema.Field(app.Field)
		if !ok {
			schema.LogDebug("document %s: field %s is not defined, application skipped", doc.ID, app.Field)
			continue
		}
		terms := indexer.buildTerms(meta, app.Text)
		if len(terms) == 0 {
			continue
		}
		fieldTerms[meta.Vno] = append(fieldTerms[meta.Vno], terms...)
		// the infobase always holds single words, phrase fields included
		if meta.HasIndexInfobase() {
			if meta.IsPhrase() {
				terms = indexer.wordTerms(app.Text)
			}
			infobaseTerms = append(infobaseTerms, terms...)
		}
	}

	if doc.Text != "" {
		infobaseTerms = append(infobaseTerms, indexer.wordTerms(doc.Text)...)
	}

	return indexer.index.write(doc.ID, fieldTerms, infobaseTerms), nil
}

// AddAll adds documents in order and stops at the first failure
func (indexer *Indexer) AddAll(docs ...*schema.Document) error {
	for i, doc := range docs {
		if _, err := indexer.Add(doc); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}

// Count of indexed documents
func (indexer *Indexer) Count() int {
	return indexer.index.Count()
}

// Clean removes every document from the index
func (indexer *Indexer) Clean() {
	indexer.index.clean()
}

func (indexer *Indexer) tokenizerOf(meta *schema.FieldMeta) tokenizer.Tokenizer {
	return indexer.provider.Tokenizer(meta.Opts.AnalyzerKind())
}

func (indexer *Indexer) buildTerms(meta *schema.FieldMeta, text string) []string {
	return keepTerms(indexer.tokenizerOf(meta).GetTokens(text))
}

func (indexer *Indexer) wordTerms(text string) []string {
	return keepTerms(indexer.provider.Tokenizer(tokenizer.Term).GetTokens(text))
}

// keepTerms drops empty terms and terms longer than 200 bytes
func keepTerms(terms []string) []string {
	kept := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" || len(term) > 200 {
			continue
		}
		kept = append(kept, term)
	}
	return kept
}
