package folio

import "github.com/RoaringBitmap/roaring"

// Searcher runs queries against an Indexer's index.
// A Searcher keeps paging state and must not be shared between goroutines;
// create one per goroutine, they may all read the same Indexer.
type Searcher struct {
	indexer   *Indexer
	limit     uint32
	offset    uint32
	lastCount uint64
}

// NewSearcher creates a searcher over indexer
func NewSearcher(indexer *Indexer) *Searcher {
	return &Searcher{indexer: indexer}
}

// Limit the result set: Limit(limit) or Limit(limit, offset).
// A limit of 0 returns every hit.
func (searcher *Searcher) Limit(limit ...uint32) *Searcher {
	searcher.limit = 0
	searcher.offset = 0
	if len(limit) > 0 {
		searcher.limit = limit[0]
		if len(limit) > 1 {
			searcher.offset = limit[1]
		}
	}
	return searcher
}

// Search return the IDs of documents matching every clause of query,
// in the order they were indexed
func (searcher *Searcher) Search(query string) []string {
	return searcher.run(ParseQuery(searcher.indexer.schema, query))
}

// SearchField looks text up in a single field's index
func (searcher *Searcher) SearchField(field, text string) []string {
	return searcher.run([]Clause{{Field: field, Text: text}})
}

// Count the documents matching query, ignoring Limit
func (searcher *Searcher) Count(query string) uint64 {
	return searcher.match(ParseQuery(searcher.indexer.schema, query)).GetCardinality()
}

// GetLastCount returns the number of hits of the last Search, before paging
func (searcher *Searcher) GetLastCount() uint64 {
	return searcher.lastCount
}

func (searcher *Searcher) run(clauses []Clause) []string {
	hits := searcher.match(clauses)
	searcher.lastCount = hits.GetCardinality()
	return searcher.indexer.index.docIDs(hits, searcher.offset, searcher.limit)
}

// match intersects the posting lists of every term of every clause.
// Proximity options are not applied: terms may come from different
// applications of the field.
func (searcher *Searcher) match(clauses []Clause) *roaring.Bitmap {
	indexer := searcher.indexer
	var sets []*roaring.Bitmap

	for _, c := range clauses {
		var (
			terms []string
			vno   uint8
			field bool
		)
		if c.Field == "" {
			terms = indexer.wordTerms(c.Text)
		} else {
			meta, ok := indexer.schema.Field(c.Field)
			if !ok {
				return roaring.New()
			}
			terms = indexer.buildTerms(meta, c.Text)
			vno, field = meta.Vno, true
		}

		for _, term := range terms {
			bm := indexer.index.lookup(vno, field, term)
			if bm == nil {
				return roaring.New()
			}
			sets = append(sets, bm)
		}
	}

	if len(sets) == 0 {
		return roaring.New()
	}
	return roaring.FastAnd(sets...)
}
