package config

import "errors"

// Errors returned while building the configuration.
var (
	// ErrInvalidFlowConfigs indicates missing resolution settings
	// (for example, an empty pattern or encoding).
	ErrInvalidFlowConfigs = errors.New("invalid flow configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrUnexpectedArguments indicates positional arguments, which the
	// command does not take.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)
