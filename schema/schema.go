package schema

import (
	"fmt"
	"sort"

	"github.com/ninggf/folio4go/tokenizer"
)

const maxVno = 255

// Schema of an infobase: every field definition with its resolved
// indexing options
type Schema struct {
	FieldMetas map[string]*FieldMeta
	names      []string
	vnoMap     map[uint8]string
}

// NewSchema resolves fields with the default tokenizer provider
func NewSchema(fields map[string]Field) (*Schema, error) {
	return newSchema(fields, tokenizer.DefaultProvider())
}

func newSchema(fields map[string]Field, provider tokenizer.Provider) (*Schema, error) {
	sc := &Schema{}
	sc.FieldMetas = make(map[string]*FieldMeta, len(fields))
	sc.vnoMap = make(map[uint8]string, len(fields))

	fs := make([]string, 0, len(fields))
	for k := range fields {
		fs = append(fs, k)
	}
	sort.Strings(fs)
	sc.names = fs

	metas := make([]*FieldMeta, 0, len(fs))
	for _, f := range fs {
		fd, err := newField(f, fields[f], provider)
		if err != nil {
			return nil, err
		}
		if fd.Fid > 0 {
			fd.Vno = fd.Fid - 1
			if other, ok := sc.vnoMap[fd.Vno]; ok {
				return nil, fmt.Errorf("%w: %d used by %s and %s", ErrDuplicateVno, fd.Vno, other, f)
			}
			sc.vnoMap[fd.Vno] = f
		}
		metas = append(metas, fd)
	}

	// fields without fid take the lowest free numbers in name order
	next := 0
	for _, fd := range metas {
		if fd.Fid == 0 {
			for ; next <= maxVno; next++ {
				if _, ok := sc.vnoMap[uint8(next)]; !ok {
					break
				}
			}
			if next > maxVno {
				return nil, fmt.Errorf("%w: %d fields, at most %d", ErrTooManyFields, len(fs), maxVno+1)
			}
			fd.Vno = uint8(next)
			sc.vnoMap[fd.Vno] = fd.Name
			next++
		}
		sc.FieldMetas[fd.Name] = fd
	}
	return sc, nil
}

// Field returns the meta data of a field
func (sc *Schema) Field(name string) (*FieldMeta, bool) {
	fm, ok := sc.FieldMetas[name]
	return fm, ok
}

// Opts returns the resolved indexing options of a field
func (sc *Schema) Opts(name string) (*FieldIndexOpts, bool) {
	fm, ok := sc.FieldMetas[name]
	if !ok {
		return nil, false
	}
	return fm.Opts, true
}

// FieldNames in sorted order
func (sc *Schema) FieldNames() []string {
	names := make([]string, len(sc.names))
	copy(names, sc.names)
	return names
}

// VnoMap return then value of number of the field
func (sc *Schema) VnoMap() map[uint8]string {
	return sc.vnoMap
}
