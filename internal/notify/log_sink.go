package notify

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
)

// LogSink writes events to a logger: advisory notices at warn level,
// everything else at debug level.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink returns a LogSink writing to log.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(event Event) {
	var e *zerolog.Event
	if event.Advisory() {
		e = s.log.Warn()
	} else {
		e = s.log.Debug()
	}

	e = e.Str("event", event.Kind.String())
	if event.Key != "" {
		e = e.Str("key", event.Key)
	}
	if event.Path != "" {
		e = e.Str("path", event.Path)
	}
	if event.Previous != "" {
		e = e.Str("previous", event.Previous)
	}

	e.Msg(event.String())
}
