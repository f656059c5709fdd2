package parser

import "errors"

// Line-level defects. Parse wraps them into a *models.ParseError.
var (
	ErrMissingAssignment = errors.New("missing `=` in assignment")
	ErrInvalidKey        = errors.New("invalid variable name")
	ErrUnterminatedQuote = errors.New("unterminated quoted value")
	ErrTrailingContent   = errors.New("unexpected characters after quoted value")
)
