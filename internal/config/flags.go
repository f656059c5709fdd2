package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/internal/define"
)

// ParseFlags parses the command-line arguments.
//
// Flags:
//
//	-node-env environment name (development, test, production, ...)
//	-default-node-env environment name used when none is given
//	-env-var variable holding the environment name (default NODE_ENV)
//	-path directory with the .env* files
//	-pattern .env* files naming pattern
//	-encoding text encoding of the .env* files
//	-system-vars merge the process environment, it wins over files
//	-system-vars-first merge the process environment, files win over it
//	-strict reject lines with invalid variable names
//	-format output format (definitions, json, dotenv, yaml)
//	-namespace prefix of definition names
//	-copy copy the output to the clipboard
//	-fallback-empty print an empty mapping when resolution fails
//	-silent suppress warnings and errors
//	-debug print the diagnostic trace
//	-log-json log as JSON lines
//	-c/-config json file path with configs
func ParseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("dotenv-flow", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&cfg.Flow.NodeEnv, "node-env", "", "Environment name (development, test, production, ...)")
	fs.StringVar(&cfg.Flow.DefaultNodeEnv, "default-node-env", "", "Environment name used when none is given")
	fs.StringVar(&cfg.Flow.EnvVar, "env-var", "", "Variable holding the environment name (default NODE_ENV)")
	fs.StringVar(&cfg.Flow.Path, "path", "", "Directory with the .env* files (default: working directory)")
	fs.StringVar(&cfg.Flow.Pattern, "pattern", "", "Naming pattern of the .env* files")
	fs.StringVar(&cfg.Flow.Encoding, "encoding", "", "Text encoding of the .env* files")
	fs.BoolVar(&cfg.Flow.SystemVars, "system-vars", false, "Merge the process environment; it wins over files")
	fs.BoolVar(&cfg.Flow.SystemVarsFirst, "system-vars-first", false, "Merge the process environment; files win over it")
	fs.BoolVar(&cfg.Flow.Strict, "strict", false, "Reject lines with invalid variable names")
	fs.StringVar(&cfg.Output.Format, "format", "", "Output format: "+strings.Join(define.Formats, ", "))
	fs.StringVar(&cfg.Output.Namespace, "namespace", "", "Prefix of definition names")
	fs.BoolVar(&cfg.Output.Copy, "copy", false, "Copy the output to the clipboard")
	fs.BoolVar(&cfg.Output.FallbackEmpty, "fallback-empty", false, "Print an empty mapping when resolution fails")
	fs.BoolVar(&cfg.Notify.Silent, "silent", false, "Suppress warnings and errors")
	fs.BoolVar(&cfg.Notify.Debug, "debug", false, "Print the diagnostic trace")
	fs.BoolVar(&cfg.Notify.LogJSON, "log-json", false, "Log as JSON lines")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArguments, strings.Join(fs.Args(), " "))
	}

	return cfg, nil
}
