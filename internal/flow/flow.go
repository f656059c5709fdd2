package flow

import (
	"github.com/MKhiriev/go-dotenv-flow/internal/locator"
	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/pattern"
	"github.com/MKhiriev/go-dotenv-flow/internal/resolver"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// SystemVars selects how the system environment is combined with the
// file-sourced variables.
type SystemVars int

const (
	// SystemVarsOff ignores the system environment.
	SystemVarsOff SystemVars = iota
	// SystemVarsOverride puts system variables on top; they win.
	SystemVarsOverride
	// SystemVarsFallback puts system variables below the files.
	SystemVarsFallback
)

// Options is everything a resolution depends on.
type Options struct {
	// NodeEnv is the explicit environment name.
	NodeEnv string
	// DefaultNodeEnv is used when neither NodeEnv nor EnvVar give a name.
	DefaultNodeEnv string
	// EnvVar names the system variable holding the environment name.
	// Defaults to NODE_ENV.
	EnvVar string
	// Path is the directory holding the layers. Defaults to the current
	// working directory.
	Path string
	// Pattern is the naming pattern. Defaults to pattern.Default.
	Pattern string
	// Encoding is a WHATWG label. Defaults to utf-8.
	Encoding string
	// Strict makes invalid variable names a parse error.
	Strict bool
	// System is a snapshot of the process environment. It is consulted for
	// EnvVar and, depending on SystemVars, merged into the result.
	System models.Variables
	SystemVars SystemVars

	// Mode and Logger drive notifications. A nil Logger logs nothing.
	Mode   notify.Mode
	Logger *logger.Logger
	// Sink, if set, additionally receives every event regardless of Mode.
	Sink notify.Sink
}

// Result is the outcome of a successful resolution.
type Result struct {
	Environment string
	Source      Source
	// Files are the layers that were merged, lowest precedence first.
	Files     []string
	Variables models.Variables
	// Notices are the advisory notices let through by Mode.
	Notices []notify.Event
}

// Load runs a full resolution. Hard failures (malformed pattern, unknown
// encoding, unreadable or unparsable layer) are returned as errors whatever
// the Mode; Mode only governs advisory and diagnostic output.
func Load(opts Options) (*Result, error) {
	sink, collector := notify.ForMode(opts.Mode, opts.Logger)
	sink = notify.Multi(sink, opts.Sink)

	p, err := pattern.Parse(valueOr(opts.Pattern, pattern.Default))
	if err != nil {
		return nil, err
	}

	r, err := resolver.New(resolver.Options{Encoding: opts.Encoding, Strict: opts.Strict}, sink)
	if err != nil {
		return nil, err
	}

	env, source := EffectiveEnvironment(opts.NodeEnv, opts.EnvVar, opts.System, opts.DefaultNodeEnv)
	sink.Notify(notify.Event{Kind: notify.KindEnvironment, Environment: env, Source: sourceLabel(source, opts.EnvVar)})

	files, err := locator.Locate(valueOr(opts.Path, "."), env, p, sink)
	if err != nil {
		return nil, err
	}

	merged, err := r.Resolve(files)
	if err != nil {
		return nil, err
	}

	vars := merged.Variables
	switch opts.SystemVars {
	case SystemVarsOverride:
		vars = resolver.Overlay(merged, opts.System, sink)
	case SystemVarsFallback:
		vars = resolver.Underlay(merged, opts.System, sink)
	}

	return &Result{
		Environment: env,
		Source:      source,
		Files:       files,
		Variables:   vars,
		Notices:     collector.Events(),
	}, nil
}

func sourceLabel(s Source, envVar string) string {
	if s == SourceSystem {
		return valueOr(envVar, DefaultEnvVar)
	}

	return string(s)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
