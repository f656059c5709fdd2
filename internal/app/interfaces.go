// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

package app

// Runner defines the minimal lifecycle contract for runnable commands.
type Runner interface {
	// Run executes the command once and returns when it is done.
	Run() error
}

// Clipboard receives the rendered output when copying is enabled.
type Clipboard interface {
	WriteAll(text string) error
}
