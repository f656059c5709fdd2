package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-dotenv-flow/internal/define"
	"github.com/MKhiriev/go-dotenv-flow/internal/flow"
	"github.com/MKhiriev/go-dotenv-flow/internal/pattern"
	"github.com/MKhiriev/go-dotenv-flow/internal/resolver"
)

// configBuilder collects partial configs in priority order: earlier configs
// win over later ones for every non-zero field.
type configBuilder struct {
	configs []*StructuredConfig
	err     error

	getwd func() (string, error)
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		getwd:   os.Getwd,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args, nil)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSON loads the JSON file named by the highest-priority config that
// names one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the lowest-priority config holding built-in
// defaults.
func (b *configBuilder) withDefaults() *configBuilder {
	wd, err := b.getwd()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting working directory: %w", err))
		return b
	}

	b.configs = append(b.configs, &StructuredConfig{
		Flow: Flow{
			EnvVar:   flow.DefaultEnvVar,
			Path:     wd,
			Pattern:  pattern.Default,
			Encoding: resolver.DefaultEncoding,
		},
		Output: Output{
			Format:    define.FormatDefinitions,
			Namespace: define.DefaultNamespace,
		},
	})
	return b
}
