package pattern

import "errors"

// Pattern syntax errors. Parse wraps them into a *models.ConfigurationError.
var (
	ErrEmptyPattern      = errors.New("pattern is empty")
	ErrUnclosedSegment   = errors.New("optional segment is not closed")
	ErrUnopenedSegment   = errors.New("closing bracket without an opening one")
	ErrNestedSegment     = errors.New("optional segments cannot be nested")
	ErrUnknownSegment    = errors.New("optional segment must hold exactly one of the `node_env` or `local` placeholders")
	ErrDuplicateSegment  = errors.New("placeholder is used more than once")
	ErrNoLiteralFileName = errors.New("pattern has no literal file name part")
)
