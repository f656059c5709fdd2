// Package utils holds small helpers shared by the command packages.
package utils

import "github.com/google/uuid"

// RunIDGenerator produces correlation IDs that tie together the log lines
// of one command run.
type RunIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

// NewRunIDGenerator returns a generator of time-ordered (v7) IDs.
func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a new run ID. A random v4 ID is used when the clock
// source for v7 fails.
func (g *RunIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
