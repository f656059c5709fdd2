package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dotenv-flow/internal/mock"
	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/pattern"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0o644))
	}
}

func abs(dir string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(dir, filepath.FromSlash(n)))
	}
	return out
}

var defaultPattern = pattern.MustParse(pattern.Default)

// ── Candidates ────────────────────────────────────────────────────────────────

// TestCandidates_AbsolutePaths verifies that every candidate is absolute and
// in precedence order.
func TestCandidates_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()

	got, err := Candidates(dir, "development", defaultPattern)
	require.NoError(t, err)

	paths := make([]string, 0, len(got))
	for _, c := range got {
		assert.True(t, filepath.IsAbs(c.Path))
		paths = append(paths, c.Path)
	}
	assert.Equal(t, abs(dir, ".env", ".env.local", ".env.development", ".env.development.local"), paths)
}

// TestCandidates_AbsolutePattern verifies that an absolute pattern ignores the
// base directory.
func TestCandidates_AbsolutePattern(t *testing.T) {
	other := t.TempDir()
	p := pattern.MustParse(filepath.ToSlash(filepath.Join(other, "app.env")) + "[.local]")

	got, err := Candidates(t.TempDir(), "", p)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(other, "app.env"), got[0].Path)
	assert.Equal(t, filepath.Join(other, "app.env.local"), got[1].Path)
}

// ── Locate ────────────────────────────────────────────────────────────────────

// TestLocate_AllLayers verifies the four-layer order when every file exists.
func TestLocate_AllLayers(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env.development.local", ".env", ".env.development", ".env.local")

	got, err := Locate(dir, "development", defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env", ".env.local", ".env.development", ".env.development.local"), got)
}

// TestLocate_MissingFilesSkipped verifies that missing layers are dropped
// without error and relative order is preserved.
func TestLocate_MissingFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env.production.local", ".env")

	got, err := Locate(dir, "production", defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env", ".env.production.local"), got)
}

// TestLocate_EmptyDirectory verifies that an empty directory is not an error.
func TestLocate_EmptyDirectory(t *testing.T) {
	got, err := Locate(t.TempDir(), "development", defaultPattern, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestLocate_NoEnvironment verifies that env layers are ignored without an
// environment name.
func TestLocate_NoEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env", ".env.local", ".env.development")

	got, err := Locate(dir, "", defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env", ".env.local"), got)
}

// TestLocate_TestEnvironmentExcludesBaseLocal verifies that .env.local is
// dropped in the test environment while .env.test.local is kept.
func TestLocate_TestEnvironmentExcludesBaseLocal(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env", ".env.local", ".env.test", ".env.test.local")

	got, err := Locate(dir, TestEnvironment, defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env", ".env.test", ".env.test.local"), got)
}

// TestLocate_SkipNoticeOnlyWhenPresent verifies that the skip notice is only
// emitted for an existing .env.local.
func TestLocate_SkipNoticeOnlyWhenPresent(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, ".env", ".env.local", ".env.test")

		c := notify.NewCollector()
		_, err := Locate(dir, TestEnvironment, defaultPattern, notify.AdvisoryOnly(c))
		require.NoError(t, err)

		assert.Equal(t, []notify.Event{{
			Kind:        notify.KindSkip,
			Path:        filepath.Join(dir, ".env.local"),
			Environment: TestEnvironment,
		}}, c.Events())
	})

	t.Run("absent", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, ".env", ".env.test")

		c := notify.NewCollector()
		_, err := Locate(dir, TestEnvironment, defaultPattern, notify.AdvisoryOnly(c))
		require.NoError(t, err)
		assert.Empty(t, c.Events())
	})
}

// TestLocate_CandidateEvents verifies the diagnostic trace of the candidate
// list, in order.
func TestLocate_CandidateEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	writeFiles(t, dir, ".env", ".env.development")

	sink := mock.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notify(notify.Event{Kind: notify.KindCandidate, Path: filepath.Join(dir, ".env"), Exists: true}),
		sink.EXPECT().Notify(notify.Event{Kind: notify.KindCandidate, Path: filepath.Join(dir, ".env.local")}),
		sink.EXPECT().Notify(notify.Event{Kind: notify.KindCandidate, Path: filepath.Join(dir, ".env.development"), Exists: true}),
		sink.EXPECT().Notify(notify.Event{Kind: notify.KindCandidate, Path: filepath.Join(dir, ".env.development.local")}),
	)

	_, err := Locate(dir, "development", defaultPattern, sink)
	require.NoError(t, err)
}

// TestLocate_DirectoryIsNotALayer verifies that a directory named like a
// layer is ignored.
func TestLocate_DirectoryIsNotALayer(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env.local"), 0o755))

	got, err := Locate(dir, "", defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env"), got)
}

// TestLocate_CustomPattern verifies a pattern placing the local segment in a
// sub-directory.
func TestLocate_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env/env", ".env/env.development", ".env/local/env", ".env/local/env.development")

	got, err := Locate(dir, "development", pattern.MustParse(".env/[local/]env[.node_env]"), nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env/env", ".env/local/env", ".env/env.development", ".env/local/env.development"), got)
}

// TestLocate_DoesNotReadFiles verifies that an unreadable layer is still
// reported as existing since only its metadata is inspected.
func TestLocate_DoesNotReadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".env")
	require.NoError(t, os.Chmod(filepath.Join(dir, ".env"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(dir, ".env"), 0o644) })

	got, err := Locate(dir, "", defaultPattern, nil)
	require.NoError(t, err)
	assert.Equal(t, abs(dir, ".env"), got)
}
