package resolver

import (
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// SystemVariables converts an environ-style list ("KEY=value") into a
// mapping. Entries without `=` are skipped. A leading `=` belongs to the key,
// as in the per-drive entries found on Windows.
func SystemVariables(environ []string) models.Variables {
	out := make(models.Variables, len(environ))
	for _, kv := range environ {
		if len(kv) == 0 {
			continue
		}
		eq := strings.IndexByte(kv[1:], '=')
		if eq < 0 {
			continue
		}
		out[kv[:eq+1]] = kv[eq+2:]
	}

	return out
}

// Overlay returns the file-sourced variables with system on top: the system
// value wins and every replaced key produces one advisory notice. Neither
// input is modified.
func Overlay(m *Merged, system models.Variables, sink notify.Sink) models.Variables {
	if sink == nil {
		sink = notify.Nop()
	}

	out := m.Variables.Clone()
	for _, key := range system.Keys() {
		if _, ok := out[key]; ok {
			sink.Notify(notify.Event{Kind: notify.KindSystemOverwrite, Key: key, Path: m.Origin[key]})
		}
		out[key] = system[key]
	}

	return out
}

// Underlay returns system with the file-sourced variables on top: files win
// and every shadowed system variable produces a diagnostic event. Neither
// input is modified.
func Underlay(m *Merged, system models.Variables, sink notify.Sink) models.Variables {
	if sink == nil {
		sink = notify.Nop()
	}

	out := system.Clone()
	for _, key := range m.Variables.Keys() {
		if _, ok := out[key]; ok {
			sink.Notify(notify.Event{Kind: notify.KindSystemShadowed, Key: key, Path: m.Origin[key]})
		}
		out[key] = m.Variables[key]
	}

	return out
}
