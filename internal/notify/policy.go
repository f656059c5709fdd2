package notify

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
)

// Mode is the notification verbosity.
type Mode int

const (
	// Normal surfaces advisory notices only.
	Normal Mode = iota
	// Silent suppresses all notices. Hard failures still propagate.
	Silent
	// Diagnostic surfaces advisory notices and every diagnostic event.
	Diagnostic
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Silent:
		return "silent"
	case Diagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a textual mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "silent":
		return Silent, nil
	case "diagnostic", "debug", "verbose":
		return Diagnostic, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ForMode builds the sink for mode and the collector holding the advisory
// notices that the mode lets through.
//
//   - Silent: nothing is collected or logged.
//   - Normal: advisory notices are collected and logged at warn level.
//   - Diagnostic: as Normal, plus every event is logged at debug level.
func ForMode(mode Mode, log *logger.Logger) (Sink, *Collector) {
	collector := NewCollector()
	if log == nil {
		log = logger.Nop()
	}

	switch mode {
	case Silent:
		return Nop(), collector
	case Diagnostic:
		return Multi(AdvisoryOnly(collector), NewLogSink(log)), collector
	default:
		return AdvisoryOnly(Multi(collector, NewLogSink(log))), collector
	}
}
