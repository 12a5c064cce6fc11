package schema

import "errors"

var (
	ErrMissingName     = errors.New("missing the name of infobase")
	ErrInvalidAnalyzer = errors.New("invalid analyzer")
	ErrDuplicateVno    = errors.New("duplicated value number")
	ErrTooManyFields   = errors.New("too many fields")
	ErrMissingDocID    = errors.New("missing document id")
)
