package folio

import (
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// postings maps a term to the documents containing it
type postings map[string]*roaring.Bitmap

func (p postings) add(term string, docid uint32) {
	bm, ok := p[term]
	if !ok {
		bm = roaring.New()
		p[term] = bm
	}
	bm.Add(docid)
}

// Index keeps one posting table per field value number plus the
// infobase (enclosing) table.
type Index struct {
	mu       sync.RWMutex
	fields   map[uint8]postings
	infobase postings
	docs     []string // docid -> document ID
}

func newIndex() *Index {
	return &Index{
		fields:   make(map[uint8]postings),
		infobase: make(postings),
	}
}

// Count of indexed documents
func (ix *Index) Count() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// terms returns the number of distinct terms of a field, or of the
// infobase table when field is false.
func (ix *Index) terms(vno uint8, field bool) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if !field {
		return len(ix.infobase)
	}
	return len(ix.fields[vno])
}

// write adds one document; terms are keyed by field value number.
func (ix *Index) write(id string, fieldTerms map[uint8][]string, infobaseTerms []string) uint32 {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	docid := uint32(len(ix.docs))
	ix.docs = append(ix.docs, id)

	for vno, terms := range fieldTerms {
		p, ok := ix.fields[vno]
		if !ok {
			p = make(postings)
			ix.fields[vno] = p
		}
		for _, term := range terms {
			p.add(term, docid)
		}
	}
	for _, term := range infobaseTerms {
		ix.infobase.add(term, docid)
	}
	return docid
}

// lookup returns a copy of the posting list of term, nil when absent
func (ix *Index) lookup(vno uint8, field bool, term string) *roaring.Bitmap {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	var p postings
	if field {
		p = ix.fields[vno]
	} else {
		p = ix.infobase
	}
	bm, ok := p[term]
	if !ok {
		return nil
	}
	return bm.Clone()
}

func (ix *Index) docIDs(bm *roaring.Bitmap, offset, limit uint32) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	ids := make([]string, 0)
	it := bm.Iterator()
	var n uint32
	for it.HasNext() {
		docid := it.Next()
		if n < offset {
			n++
			continue
		}
		if limit > 0 && uint32(len(ids)) >= limit {
			break
		}
		if int(docid) < len(ix.docs) {
			ids = append(ids, ix.docs[docid])
		}
		n++
	}
	return ids
}

func (ix *Index) clean() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.fields = make(map[uint8]postings)
	ix.infobase = make(postings)
	ix.docs = nil
}
