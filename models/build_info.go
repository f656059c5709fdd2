// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

const unknownBuildValue = "N/A"

// BuildInfo carries build-time metadata injected by linker flags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs a [BuildInfo], replacing empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// MarshalZerologObject lets a BuildInfo be logged with Event.Object.
func (b BuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", b.Version).
		Str("date", b.Date).
		Str("commit", b.Commit)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
