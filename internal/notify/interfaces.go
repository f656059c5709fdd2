//go:generate mockgen -source=interfaces.go -destination=../mock/sink_mock.go -package=mock

package notify

// Sink receives resolution events. Implementations must not alter
// resolution results; they only observe.
type Sink interface {
	Notify(event Event)
}
