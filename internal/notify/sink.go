package notify

type nopSink struct{}

func (nopSink) Notify(Event) {}

// Nop returns a sink that drops every event. It yields silent mode.
func Nop() Sink {
	return nopSink{}
}

// Collector keeps every event it receives, in order.
type Collector struct {
	events []Event
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(event Event) {
	c.events = append(c.events, event)
}

// Events returns a copy of the collected events.
func (c *Collector) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)

	return out
}

type multiSink []Sink

func (m multiSink) Notify(event Event) {
	for _, s := range m {
		s.Notify(event)
	}
}

// Multi forwards every event to each of sinks, in order. Nil sinks are
// ignored.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

type advisorySink struct {
	next Sink
}

func (a advisorySink) Notify(event Event) {
	if event.Advisory() {
		a.next.Notify(event)
	}
}

// AdvisoryOnly forwards advisory notices to next and drops diagnostic events.
func AdvisoryOnly(next Sink) Sink {
	return advisorySink{next: next}
}
