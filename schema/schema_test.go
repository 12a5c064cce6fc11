package schema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ninggf/folio4go/tokenizer"
)

func TestNewSchema_Fields(t *testing.T) {
	type want struct {
		vno      uint8
		infobase bool
		phrase   bool
		typ      string
	}
	fields := map[string]Field{
		"Title":    {Index: "TF,TE", Fid: 8},
		"Heading":  {Index: "PF"},
		"Code":     {Analyzer: "phrase", Index: "TF,TE"},
		"Note":     {Index: ""},
		"Hidden":   {Index: "NO", Type: "text"},
		"Created":  {Index: "DT", Type: "date", Fid: 10},
		"Category": {Index: "pf , te", Type: "keyword"},
	}
	tests := []struct {
		name  string
		field string
		want  want
	}{
		{"explicit fid", "Title", want{7, true, false, TYPE_TEXT}},
		{"phrase field only", "Heading", want{2, false, true, TYPE_TEXT}},
		{"analyzer overrides index", "Code", want{1, false, true, TYPE_TEXT}},
		{"no options is Normal", "Note", want{4, true, false, TYPE_TEXT}},
		{"not indexed", "Hidden", want{3, false, false, TYPE_TEXT}},
		{"date field", "Created", want{9, false, false, TYPE_DATE}},
		{"unknown type is kept", "Category", want{0, true, true, "keyword"}},
	}

	sc, err := NewSchema(fields)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, ok := sc.Field(tt.field)
			if !ok {
				t.Fatalf("field %s not found", tt.field)
			}
			if fm.Vno != tt.want.vno {
				t.Errorf("vno = %v, want = %v", fm.Vno, tt.want.vno)
			}
			if fm.HasIndexInfobase() != tt.want.infobase {
				t.Errorf("infobase = %v, want = %v", fm.HasIndexInfobase(), tt.want.infobase)
			}
			if fm.IsPhrase() != tt.want.phrase {
				t.Errorf("phrase = %v, want = %v", fm.IsPhrase(), tt.want.phrase)
			}
			if fm.Type != tt.want.typ {
				t.Errorf("type = %v, want = %v", fm.Type, tt.want.typ)
			}
			if sc.VnoMap()[fm.Vno] != tt.field {
				t.Errorf("vnoMap[%d] = %v, want = %v", fm.Vno, sc.VnoMap()[fm.Vno], tt.field)
			}
		})
	}
}

func TestNewSchema_AnalyzerOverride(t *testing.T) {
	sc, err := NewSchema(map[string]Field{"Code": {Analyzer: "term", Index: "PF,TE,PR"}})
	if err != nil {
		t.Fatal(err)
	}
	opts, ok := sc.Opts("Code")
	if !ok {
		t.Fatal("Opts(Code) not found")
	}
	if opts.AnalyzerKind() != tokenizer.Term {
		t.Errorf("analyzer = %v, want = term", opts.AnalyzerKind())
	}
	if opts.AllowInfobaseIndexing() || opts.ProximityConstrained() {
		t.Errorf("analyzer-only field should leave every option off, got %v", opts)
	}
	if _, ok := sc.Opts("Missing"); ok {
		t.Error("Opts(Missing) should not be found")
	}
}

func TestNewSchema_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]Field
		want   error
	}{
		{"bad analyzer", map[string]Field{"A": {Analyzer: "keyword"}}, ErrInvalidAnalyzer},
		{"duplicated fid", map[string]Field{"A": {Fid: 3}, "B": {Fid: 3}}, ErrDuplicateVno},
		{"too many fields", manyFields(257), ErrTooManyFields},
		{"too many fields around fids", func() map[string]Field {
			fields := manyFields(256)
			fields["X"] = Field{Fid: 200}
			return fields
		}(), ErrTooManyFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.fields)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want = %v", err, tt.want)
			}
		})
	}
}

func manyFields(n int) map[string]Field {
	fields := make(map[string]Field, n)
	for i := 0; i < n; i++ {
		fields[fmt.Sprintf("F%03d", i)] = Field{}
	}
	return fields
}

func TestNewSchema_VnoSkipsExplicitFid(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]Field
		want   map[string]uint8
	}{
		{"fid takes the first position", map[string]Field{"A": {}, "B": {Fid: 1}}, map[string]uint8{"A": 1, "B": 0}},
		{"positions flow around fids", map[string]Field{"A": {}, "B": {Fid: 2}, "C": {}, "D": {Fid: 1}, "E": {}},
			map[string]uint8{"A": 2, "B": 1, "C": 3, "D": 0, "E": 4}},
		{"highest fid", map[string]Field{"A": {Fid: 255}, "B": {}}, map[string]uint8{"A": 254, "B": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := NewSchema(tt.fields)
			if err != nil {
				t.Fatal(err)
			}
			for name, vno := range tt.want {
				fm, _ := sc.Field(name)
				if fm.Vno != vno {
					t.Errorf("vno of %s = %v, want = %v", name, fm.Vno, vno)
				}
			}
		})
	}
}

func TestNewSchema_FullRange(t *testing.T) {
	sc, err := NewSchema(manyFields(256))
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.VnoMap()) != 256 {
		t.Errorf("len(vnoMap) = %v, want = 256", len(sc.VnoMap()))
	}
	fm, _ := sc.Field("F255")
	if fm.Vno != 255 {
		t.Errorf("vno = %v, want = 255", fm.Vno)
	}
}

func TestNewSchema_NeverRejectsFlags(t *testing.T) {
	_, err := NewSchema(map[string]Field{
		"A": {Index: "NO,TF,TE,PF"},
		"B": {Index: "??,IX+,  ,;"},
		"C": {Index: "DT", Type: "text"},
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSchema_FieldNames(t *testing.T) {
	sc, err := NewSchema(map[string]Field{"b": {}, "c": {}, "a": {}})
	if err != nil {
		t.Fatal(err)
	}
	names := sc.FieldNames()
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v, want = %v", names, want)
			break
		}
	}
	names[0] = "z"
	if sc.FieldNames()[0] != "a" {
		t.Error("FieldNames must return a copy")
	}
}
