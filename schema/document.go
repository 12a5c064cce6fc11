package schema

// Application is one occurrence of a field inside a document
type Application struct {
	Field string
	Text  string
}

// Document to be indexed.
// Text holds the record's unfielded content; it always goes to the infobase index.
type Document struct {
	ID           string
	Text         string
	Applications []Application
}

// NewDocument creates a document with the given id and body text
func NewDocument(id, text string) *Document {
	return &Document{ID: id, Text: text}
}

// Apply appends a field application and returns the document for chaining
func (doc *Document) Apply(field, text string) *Document {
	doc.Applications = append(doc.Applications, Application{Field: field, Text: text})
	return doc
}
