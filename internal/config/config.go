// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
)

// EnvPrefix is prepended to every environment variable read by parseEnv.
const EnvPrefix = "DOTENV_FLOW_"

// StructuredConfig is the top-level configuration container for the
// dotenv-flow command. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name, relative to [EnvPrefix].
//   - json: key in the JSON config file.
type StructuredConfig struct {
	// Flow holds everything the resolution itself depends on.
	Flow Flow `json:"flow"`

	// Output controls how the resolved variables are printed.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Notify controls advisory and diagnostic output.
	Notify Notify `json:"notify"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the DOTENV_FLOW_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Flow holds the resolution inputs.
type Flow struct {
	// NodeEnv is the explicit environment name (development, test, ...).
	// Env: DOTENV_FLOW_NODE_ENV
	NodeEnv string `env:"NODE_ENV" json:"node_env"`

	// DefaultNodeEnv is used when no environment name is given explicitly
	// or through EnvVar.
	// Env: DOTENV_FLOW_DEFAULT_NODE_ENV
	DefaultNodeEnv string `env:"DEFAULT_NODE_ENV" json:"default_node_env"`

	// EnvVar names the process environment variable holding the
	// environment name.
	// Env: DOTENV_FLOW_ENV_VAR
	EnvVar string `env:"ENV_VAR" json:"env_var"`

	// Path is the directory with the `.env*` files.
	// Env: DOTENV_FLOW_PATH
	Path string `env:"PATH" json:"path"`

	// Pattern is the `.env*` file naming pattern.
	// Env: DOTENV_FLOW_PATTERN
	Pattern string `env:"PATTERN" json:"pattern"`

	// Encoding is the text encoding of the `.env*` files.
	// Env: DOTENV_FLOW_ENCODING
	Encoding string `env:"ENCODING" json:"encoding"`

	// SystemVars merges the process environment into the result.
	// Env: DOTENV_FLOW_SYSTEM_VARS
	SystemVars bool `env:"SYSTEM_VARS" json:"system_vars"`

	// SystemVarsFirst makes `.env*` values win over the process
	// environment instead of the other way round.
	// Env: DOTENV_FLOW_SYSTEM_VARS_FIRST
	SystemVarsFirst bool `env:"SYSTEM_VARS_FIRST" json:"system_vars_first"`

	// Strict rejects lines with invalid variable names.
	// Env: DOTENV_FLOW_STRICT
	Strict bool `env:"STRICT" json:"strict"`
}

// Output controls rendering.
type Output struct {
	// Format is one of definitions, json, dotenv, yaml.
	// Env: DOTENV_FLOW_OUTPUT_FORMAT
	Format string `env:"FORMAT" json:"format"`

	// Namespace prefixes definition names.
	// Env: DOTENV_FLOW_OUTPUT_NAMESPACE
	Namespace string `env:"NAMESPACE" json:"namespace"`

	// Copy puts the rendered output on the system clipboard as well.
	// Env: DOTENV_FLOW_OUTPUT_COPY
	Copy bool `env:"COPY" json:"copy"`

	// FallbackEmpty prints an empty mapping instead of failing when the
	// resolution fails.
	// Env: DOTENV_FLOW_OUTPUT_FALLBACK_EMPTY
	FallbackEmpty bool `env:"FALLBACK_EMPTY" json:"fallback_empty"`
}

// Notify controls notices and logging.
type Notify struct {
	// Silent suppresses advisory notices. Hard failures are still logged.
	// Env: DOTENV_FLOW_SILENT
	Silent bool `env:"SILENT" json:"silent"`

	// Debug enables the diagnostic trace. It takes precedence over Silent.
	// Env: DOTENV_FLOW_DEBUG
	Debug bool `env:"DEBUG" json:"debug"`

	// LogJSON switches log output to JSON lines.
	// Env: DOTENV_FLOW_LOG_JSON
	LogJSON bool `env:"LOG_JSON" json:"log_json"`
}

// Mode maps the Silent and Debug switches to a notification mode.
func (n Notify) Mode() notify.Mode {
	switch {
	case n.Debug:
		return notify.Diagnostic
	case n.Silent:
		return notify.Silent
	default:
		return notify.Normal
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
