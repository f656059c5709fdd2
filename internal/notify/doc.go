// Package notify carries the events a resolution produces and decides, per
// notification mode, where they go.
//
// Components only ever call [Sink.Notify]. Whether an event ends up nowhere
// (silent mode), in the advisory list and the warning log (normal mode) or
// additionally in the debug log (diagnostic mode) is decided by the sink the
// caller builds with [ForMode].
package notify
