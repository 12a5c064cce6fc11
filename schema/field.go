package schema

import (
	"fmt"

	"github.com/ninggf/folio4go/tokenizer"
)

// Field definition as written in the infobase schema
type Field struct {
	Type     string
	Index    string // Folio indexing options, e.g. "TF,TE"
	Analyzer string // "term" or "phrase"; overrides Index when set
	Fid      uint8
}

// FieldMeta of a Field
type FieldMeta struct {
	Field
	Name string
	Vno  uint8
	Opts *FieldIndexOpts
}

// newField creates meta data of a field
func newField(name string, def Field, provider tokenizer.Provider) (*FieldMeta, error) {
	fm := &FieldMeta{Field: def, Name: name}
	if err := fm.prepare(provider); err != nil {
		return nil, err
	}
	return fm, nil
}

func (meta *FieldMeta) IsPhrase() bool {
	return meta.Opts.AnalyzerKind() == tokenizer.Phrase
}

func (meta *FieldMeta) IsDate() bool {
	return meta.Type == TYPE_DATE
}

// HasIndexInfobase tells whether terms of this field are searchable
// without naming the field.
func (meta *FieldMeta) HasIndexInfobase() bool {
	return meta.Opts.AllowInfobaseIndexing()
}

func (meta *FieldMeta) String() string {
	return meta.Name
}

func (meta *FieldMeta) prepare(provider tokenizer.Provider) error {
	if meta.Type == "" {
		meta.Type = TYPE_TEXT
	}
	LogDebugIf(!FIELD_TYPES[meta.Type], "field %s: unknown type %q kept as is", meta.Name, meta.Type)

	if meta.Analyzer != "" {
		kind, err := tokenizer.ParseKind(meta.Analyzer)
		if err != nil {
			return fmt.Errorf("field %q: %w: %q", meta.Name, ErrInvalidAnalyzer, meta.Analyzer)
		}
		LogDebugIf(meta.Index != "", "field %s: analyzer %s set, index options %q ignored", meta.Name, kind, meta.Index)
		meta.Opts = FromAnalyzer(provider.Tokenizer(kind))
		return nil
	}

	meta.Opts = ResolveFromFlags(SplitFlags(meta.Index))
	return nil
}
