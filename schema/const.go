package schema

// Folio field indexing options, as written in field definitions.
const (
	FLAG_TERM_FIELD     = "TF" // terms go to the field's index
	FLAG_PHRASE_FIELD   = "PF" // the whole application is one term in the field's index
	FLAG_TERM_ENCLOSING = "TE" // terms also go to the infobase index
	FLAG_NOT_INDEXED    = "NO"
	FLAG_PROXIMITY      = "PR"
	FLAG_DATE_WINDOW    = "DT"
	FLAG_FAST_PHRASE    = "FP"
	FLAG_STOP_WORDS     = "SW"
)

// Folio field types
const (
	TYPE_TEXT    = "text"
	TYPE_DATE    = "date"
	TYPE_TIME    = "time"
	TYPE_INTEGER = "integer"
	TYPE_DECIMAL = "decimal"
)

var FIELD_TYPES = map[string]bool{
	TYPE_TEXT:    true,
	TYPE_DATE:    true,
	TYPE_TIME:    true,
	TYPE_INTEGER: true,
	TYPE_DECIMAL: true,
}
