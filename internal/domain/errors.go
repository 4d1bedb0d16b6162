package domain

import "errors"

var (
	// ErrMalformedInput is returned for a paragraph containing a line break or
	// an unparsable table row.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedLanguage is returned for a language tag without a rule set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	ErrInvalidOrder  = errors.New("invalid model order")
	ErrModelNotFound = errors.New("model not found")
)
