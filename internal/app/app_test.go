package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dotenv-flow/internal/config"
	"github.com/MKhiriev/go-dotenv-flow/internal/define"
	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
	"github.com/MKhiriev/go-dotenv-flow/internal/mock"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newConfig(dir, format string) *config.StructuredConfig {
	return &config.StructuredConfig{
		Flow: config.Flow{
			EnvVar:   "NODE_ENV",
			Path:     dir,
			Pattern:  ".env[.node_env][.local]",
			Encoding: "utf-8",
		},
		Output: config.Output{
			Format:    format,
			Namespace: "process.env",
		},
	}
}

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewLogger("test", logger.Options{Output: buf, Level: zerolog.DebugLevel})
}

// ── Run ───────────────────────────────────────────────────────────────────────

// TestRun_Definitions verifies the default output of a layered resolution.
func TestRun_Definitions(t *testing.T) {
	dir := project(t, map[string]string{
		".env":                   "A=1\nB=1",
		".env.development":       "B=2",
		".env.development.local": "C=3",
	})
	var stdout bytes.Buffer

	a := NewApp(newConfig(dir, define.FormatDefinitions), nil, &stdout, []string{"NODE_ENV=development"}, nil)
	require.NoError(t, a.Run())

	assert.JSONEq(t, `{
		"process.env.A": "\"1\"",
		"process.env.B": "\"2\"",
		"process.env.C": "\"3\""
	}`, stdout.String())
}

// TestRun_SystemVars verifies both system variable merge strategies.
func TestRun_SystemVars(t *testing.T) {
	dir := project(t, map[string]string{".env": "A=file\nB=file"})
	environ := []string{"A=system", "PATH_LIKE=/bin"}

	tests := []struct {
		name  string
		setup func(cfg *config.StructuredConfig)
		want  string
	}{
		{
			name:  "system wins",
			setup: func(cfg *config.StructuredConfig) { cfg.Flow.SystemVars = true },
			want:  `{"A": "system", "B": "file", "PATH_LIKE": "/bin"}`,
		},
		{
			name:  "files win",
			setup: func(cfg *config.StructuredConfig) { cfg.Flow.SystemVarsFirst = true },
			want:  `{"A": "file", "B": "file", "PATH_LIKE": "/bin"}`,
		},
		{
			name:  "disabled",
			setup: func(cfg *config.StructuredConfig) {},
			want:  `{"A": "file", "B": "file"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(dir, define.FormatJSON)
			tt.setup(cfg)
			var stdout bytes.Buffer

			require.NoError(t, NewApp(cfg, nil, &stdout, environ, nil).Run())
			assert.JSONEq(t, tt.want, stdout.String())
		})
	}
}

// TestRun_Failure verifies that a hard failure is returned and nothing is
// printed.
func TestRun_Failure(t *testing.T) {
	dir := project(t, map[string]string{".env": "1BAD=x"})
	cfg := newConfig(dir, define.FormatJSON)
	cfg.Flow.Strict = true
	var stdout bytes.Buffer

	err := NewApp(cfg, nil, &stdout, nil, nil).Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgResolutionFailed)
	var parseErr *models.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Empty(t, stdout.String())
}

// TestRun_FallbackEmpty verifies that a failure degrades to an empty mapping
// and is still logged.
func TestRun_FallbackEmpty(t *testing.T) {
	dir := project(t, map[string]string{".env": "1BAD=x"})
	cfg := newConfig(dir, define.FormatJSON)
	cfg.Flow.Strict = true
	cfg.Output.FallbackEmpty = true
	var stdout, logs bytes.Buffer

	require.NoError(t, NewApp(cfg, newTestLogger(&logs), &stdout, nil, nil).Run())

	assert.JSONEq(t, `{}`, stdout.String())
	assert.Contains(t, logs.String(), MsgFallbackEmpty)
}

// TestRun_FallbackEmptySilent verifies that silent mode hides the degraded
// failure.
func TestRun_FallbackEmptySilent(t *testing.T) {
	dir := project(t, map[string]string{".env": "1BAD=x"})
	cfg := newConfig(dir, define.FormatJSON)
	cfg.Flow.Strict = true
	cfg.Output.FallbackEmpty = true
	cfg.Notify.Silent = true
	var stdout, logs bytes.Buffer

	require.NoError(t, NewApp(cfg, newTestLogger(&logs), &stdout, nil, nil).Run())

	assert.JSONEq(t, `{}`, stdout.String())
	assert.NotContains(t, logs.String(), MsgFallbackEmpty)
}

// TestRun_DiagnosticTrace verifies the debug trace written during a run.
func TestRun_DiagnosticTrace(t *testing.T) {
	dir := project(t, map[string]string{".env": "A=1"})
	cfg := newConfig(dir, define.FormatDefinitions)
	cfg.Flow.SystemVars = true
	cfg.Notify.Debug = true
	var stdout, logs bytes.Buffer

	require.NoError(t, NewApp(cfg, newTestLogger(&logs), &stdout, nil, nil).Run())

	out := logs.String()
	assert.Contains(t, out, MsgInit)
	assert.Contains(t, out, MsgRegisteringSystemVars)
	assert.Contains(t, out, MsgRegisteringDefinitions)
	assert.Contains(t, out, ">> process.env.A")
	assert.Contains(t, out, MsgCompleted)
}

// TestRun_UnknownFormat verifies that rendering errors surface.
func TestRun_UnknownFormat(t *testing.T) {
	dir := project(t, map[string]string{".env": "A=1"})
	var stdout bytes.Buffer

	err := NewApp(newConfig(dir, "toml"), nil, &stdout, nil, nil).Run()

	require.ErrorIs(t, err, define.ErrUnknownFormat)
	assert.Empty(t, stdout.String())
}

// ── Copy ──────────────────────────────────────────────────────────────────────

// TestRun_Copy verifies that the rendered output reaches the clipboard.
func TestRun_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboard(ctrl)

	dir := project(t, map[string]string{".env": "A=1"})
	cfg := newConfig(dir, define.FormatDotenv)
	cfg.Output.Copy = true
	var stdout bytes.Buffer

	clip.EXPECT().WriteAll("A=1\n").Return(nil)

	require.NoError(t, NewApp(cfg, nil, &stdout, nil, clip).Run())
	assert.Equal(t, "A=1\n", stdout.String())
}

// TestRun_CopyDisabled verifies that the clipboard is untouched by default.
func TestRun_CopyDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboard(ctrl)

	dir := project(t, map[string]string{".env": "A=1"})
	var stdout bytes.Buffer

	require.NoError(t, NewApp(newConfig(dir, define.FormatDotenv), nil, &stdout, nil, clip).Run())
}

// TestRun_CopyError verifies that clipboard failures are returned.
func TestRun_CopyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboard(ctrl)

	dir := project(t, map[string]string{".env": "A=1"})
	cfg := newConfig(dir, define.FormatDotenv)
	cfg.Output.Copy = true
	var stdout bytes.Buffer

	clip.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no display"))

	err := NewApp(cfg, nil, &stdout, nil, clip).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgCopyFailed)
}

// TestApp_ImplementsRunner is a compile-time style check kept as a test.
func TestApp_ImplementsRunner(t *testing.T) {
	var r Runner = NewApp(newConfig(t.TempDir(), define.FormatJSON), nil, &bytes.Buffer{}, nil, nil)
	assert.NotNil(t, r)
}
