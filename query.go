package folio

import (
	"strings"

	"github.com/ninggf/folio4go/schema"
)

// Clause is one part of a query. An empty Field means the infobase index.
type Clause struct {
	Field string
	Text  string
}

// ParseQuery splits a query into clauses.
//
// A part written as name:value or name:"some words" becomes a field clause
// when name is a field of sc. Every other part is joined into a single
// infobase clause, which comes last.
func ParseQuery(sc *schema.Schema, query string) []Clause {
	replacer := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	query = strings.TrimSpace(replacer.Replace(query))

	var clauses []Clause
	var loose []string
	for query != "" {
		var part string
		part, query = nextPart(query)
		if pos := strings.Index(part, ":"); pos > 0 {
			name := part[:pos]
			if _, ok := sc.Field(name); ok {
				clauses = append(clauses, Clause{Field: name, Text: unquote(part[pos+1:])})
				continue
			}
		}
		loose = append(loose, unquote(part))
	}
	if len(loose) > 0 {
		clauses = append(clauses, Clause{Text: strings.Join(loose, " ")})
	}
	return clauses
}

// nextPart cuts the next space separated part off s.
// Spaces inside double quotes do not separate.
func nextPart(s string) (string, string) {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case ' ':
			if !quoted {
				return s[:i], strings.TrimLeft(s[i+1:], " ")
			}
		}
	}
	return s, ""
}

func unquote(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
