package app

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-dotenv-flow/internal/config"
	"github.com/MKhiriev/go-dotenv-flow/internal/define"
	"github.com/MKhiriev/go-dotenv-flow/internal/flow"
	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/resolver"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// App resolves and prints the variables for one configuration.
type App struct {
	cfg       *config.StructuredConfig
	log       *logger.Logger
	stdout    io.Writer
	environ   []string
	clipboard Clipboard
}

// NewApp builds an App. environ is the process environment snapshot in
// os.Environ form; clipboard may be nil when copying is disabled.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger, stdout io.Writer, environ []string, clipboard Clipboard) *App {
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:       cfg,
		log:       log,
		stdout:    stdout,
		environ:   environ,
		clipboard: clipboard,
	}
}

// Run performs the resolution and writes the rendered result.
func (a *App) Run() error {
	mode := a.cfg.Notify.Mode()
	a.traceOptions()

	opts := a.flowOptions(mode)
	if opts.SystemVars != flow.SystemVarsOff {
		a.log.Debug().Msg(MsgRegisteringSystemVars)
	}

	vars := models.Variables{}
	res, err := flow.Load(opts)
	switch {
	case err == nil:
		vars = res.Variables
	case a.cfg.Output.FallbackEmpty:
		if mode != notify.Silent {
			a.log.Error().Err(err).Msg(MsgFallbackEmpty)
		}
	default:
		return fmt.Errorf("%s: %w", MsgResolutionFailed, err)
	}

	if a.cfg.Output.Format == define.FormatDefinitions {
		a.log.Debug().Msg(MsgRegisteringDefinitions)
		for _, key := range vars.Keys() {
			a.log.Debug().Msgf(">> %s.%s", a.cfg.Output.Namespace, key)
		}
	}

	out, err := define.Render(vars, a.cfg.Output.Format, a.cfg.Output.Namespace)
	if err != nil {
		return err
	}

	if _, err := a.stdout.Write(out); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if a.cfg.Output.Copy && a.clipboard != nil {
		if err := a.clipboard.WriteAll(string(out)); err != nil {
			return fmt.Errorf("%s: %w", MsgCopyFailed, err)
		}
	}

	a.log.Debug().Msg(MsgCompleted)
	return nil
}

func (a *App) flowOptions(mode notify.Mode) flow.Options {
	f := a.cfg.Flow

	systemVars := flow.SystemVarsOff
	switch {
	case f.SystemVarsFirst:
		systemVars = flow.SystemVarsFallback
	case f.SystemVars:
		systemVars = flow.SystemVarsOverride
	}

	return flow.Options{
		NodeEnv:        f.NodeEnv,
		DefaultNodeEnv: f.DefaultNodeEnv,
		EnvVar:         f.EnvVar,
		Path:           f.Path,
		Pattern:        f.Pattern,
		Encoding:       f.Encoding,
		Strict:         f.Strict,
		System:         resolver.SystemVariables(a.environ),
		SystemVars:     systemVars,
		Mode:           mode,
		Logger:         a.log,
	}
}

// traceOptions logs the explicitly set options at debug level.
func (a *App) traceOptions() {
	e := a.log.Debug()
	f := a.cfg.Flow
	for name, value := range map[string]string{
		"options.node_env":         f.NodeEnv,
		"options.default_node_env": f.DefaultNodeEnv,
		"options.path":             f.Path,
		"options.pattern":          f.Pattern,
		"options.encoding":         f.Encoding,
	} {
		if value != "" {
			e = e.Str(name, value)
		}
	}

	e.Bool("options.system_vars", f.SystemVars || f.SystemVarsFirst).
		Bool("options.silent", a.cfg.Notify.Silent).
		Msg(MsgInit)
}
