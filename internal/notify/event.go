package notify

import (
	"fmt"
	"strings"
)

// Kind identifies what happened.
type Kind int

const (
	// KindEnvironment reports the effective environment name and its source.
	KindEnvironment Kind = iota
	// KindCandidate reports one candidate layer and whether it exists.
	KindCandidate
	// KindSkip reports an existing layer that is deliberately left out
	// (the base local layer in the test environment).
	KindSkip
	// KindParsed reports a layer that was read and parsed.
	KindParsed
	// KindIgnoredLine reports a line dropped by the lenient parser.
	KindIgnoredLine
	// KindOverwrite reports a key from an earlier layer replaced by a later one.
	KindOverwrite
	// KindSystemOverwrite reports a file-defined key replaced by a system
	// environment variable.
	KindSystemOverwrite
	// KindSystemShadowed reports a system environment variable replaced by
	// a file-defined value when system variables are loaded first.
	KindSystemShadowed
)

var kindNames = map[Kind]string{
	KindEnvironment:     "environment",
	KindCandidate:       "candidate",
	KindSkip:            "skip",
	KindParsed:          "parsed",
	KindIgnoredLine:     "ignored-line",
	KindOverwrite:       "overwrite",
	KindSystemOverwrite: "system-overwrite",
	KindSystemShadowed:  "system-shadowed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single structured observation. Only the fields relevant to the
// Kind are set.
type Event struct {
	Kind Kind
	// Key is the variable name for overwrite events.
	Key string
	// Path is the layer the event is about. For overwrite events it is the
	// layer that won.
	Path string
	// Previous is the layer that lost an overwrite.
	Previous string
	// Environment and Source describe the effective environment name.
	Environment string
	Source      string
	// Exists is set for candidate events.
	Exists bool
	// Line is set for ignored-line events.
	Line int
	// Count is the number of variables parsed from Path.
	Count int
}

// Advisory reports whether the event is an advisory notice. Advisory notices
// are surfaced in normal mode; all other events are diagnostic only.
func (e Event) Advisory() bool {
	return e.Kind == KindSkip || e.Kind == KindSystemOverwrite
}

// String renders the event as a log-friendly message.
func (e Event) String() string {
	switch e.Kind {
	case KindEnvironment:
		if e.Environment == "" {
			return `building in "no environment" mode`
		}
		return fmt.Sprintf("building for %q environment (set by %s)", e.Environment, e.Source)
	case KindCandidate:
		if e.Exists {
			return fmt.Sprintf("found %s", e.Path)
		}
		return fmt.Sprintf("%s does not exist", e.Path)
	case KindSkip:
		return fmt.Sprintf("%s is being skipped for %q environment", e.Path, e.Environment)
	case KindParsed:
		return fmt.Sprintf("parsed %d variable(s) from %s", e.Count, e.Path)
	case KindIgnoredLine:
		return fmt.Sprintf("%s:%d: line ignored, not a valid assignment", e.Path, e.Line)
	case KindOverwrite:
		return fmt.Sprintf("%q defined in %s is overwritten by %s", e.Key, e.Previous, e.Path)
	case KindSystemOverwrite:
		return fmt.Sprintf("%q is overwritten by the system environment variable with the same name", e.Key)
	case KindSystemShadowed:
		return fmt.Sprintf("system environment variable %q is overwritten by %s", e.Key, e.Path)
	default:
		return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Kind, e.Key, e.Path))
	}
}
