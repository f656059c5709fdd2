// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the dotenv-flow command runtime.
//
// It turns the merged configuration into a single resolution, renders the
// result to stdout and decides what a failed resolution means for the
// process: an error by default, or an empty mapping when the command was
// asked to degrade.
package app
