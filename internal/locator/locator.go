// Package locator turns a naming pattern into the list of `.env*` layers
// that actually exist in a directory.
package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/pattern"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// TestEnvironment is the environment name in which the base local layer is
// never loaded.
const TestEnvironment = "test"

// Candidate is one expanded layer resolved against the base directory.
type Candidate struct {
	pattern.Layer
	// Path is absolute.
	Path string
}

// Candidates expands p for envName and resolves every layer against
// baseDir, lowest precedence first. It does not touch the filesystem beyond
// making baseDir absolute.
func Candidates(baseDir, envName string, p *pattern.Pattern) ([]Candidate, error) {
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, &models.ConfigurationError{Option: "path", Value: baseDir, Err: err}
	}

	layers := p.Expand(envName)
	out := make([]Candidate, 0, len(layers))
	for _, l := range layers {
		name := filepath.FromSlash(l.Name)
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		out = append(out, Candidate{Layer: l, Path: filepath.Clean(name)})
	}

	return out, nil
}

// Locate returns the absolute paths of the layers of p that exist as
// regular files in baseDir, lowest precedence first.
//
// In the test environment the base local layer is excluded; sink gets a
// skip notice only when that file is actually present. Missing layers are
// never an error.
func Locate(baseDir, envName string, p *pattern.Pattern, sink notify.Sink) ([]string, error) {
	if sink == nil {
		sink = notify.Nop()
	}

	candidates, err := Candidates(baseDir, envName, p)
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, c := range candidates {
		ok, err := exists(c.Path)
		if err != nil {
			return nil, &models.FileAccessError{Path: c.Path, Err: err}
		}

		if envName == TestEnvironment && c.Local && !c.Env {
			if ok {
				sink.Notify(notify.Event{Kind: notify.KindSkip, Path: c.Path, Environment: envName})
			}
			continue
		}

		sink.Notify(notify.Event{Kind: notify.KindCandidate, Path: c.Path, Exists: ok})
		if ok {
			existing = append(existing, c.Path)
		}
	}

	return existing, nil
}

// exists reports whether path is a regular file. It only stats the path.
func exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}

	return info.Mode().IsRegular(), nil
}
