package models

import (
	"fmt"
)

// ConfigurationError reports a defect in caller input, such as a malformed
// file naming pattern or an unknown text encoding. It is always fatal and is
// reported regardless of the notification mode.
type ConfigurationError struct {
	// Option names the offending input ("pattern", "encoding", ...).
	Option string
	// Value is the rejected input as supplied by the caller.
	Value string
	// Err describes what is wrong with Value.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Option, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a layer that was found on disk but could not be
// read or decoded.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed content at a specific line of a layer.
type ParseError struct {
	Path string
	// Line is 1-based.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
