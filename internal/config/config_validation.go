// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-dotenv-flow/internal/define"
)

// validate checks that the final merged [StructuredConfig] is usable.
// Pattern syntax and encoding labels are left to the resolution itself,
// which reports them as configuration errors.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Flow.Pattern) == "" || strings.TrimSpace(cfg.Flow.Encoding) == "" {
		return ErrInvalidFlowConfigs
	}

	if !slices.Contains(define.Formats, cfg.Output.Format) {
		return ErrInvalidOutputConfigs
	}

	return nil
}
