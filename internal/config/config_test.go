package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-dev/petal/internal/errors"
)

func testConfig() *ProjectConfig {
	cfg := Default()
	cfg.Theme = "cupcake"
	cfg.Port = 8080
	cfg.Binary = &BinaryMetadata{
		Style:        "daisy",
		Version:      "v1.4.2",
		DownloadedAt: time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		SHA:          "sha256:deadbeef",
		ReleaseID:    991,
	}
	cfg.AddComponent(ComponentMetadata{Name: "button", Kind: KindComponent, Path: "components/ui/button.go"})
	cfg.AddComponent(ComponentMetadata{Name: "hero", Kind: KindBlock, Path: "components/hero/hero.go"})
	return cfg
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	original := testConfig()
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Style, loaded.Style)
	assert.Equal(t, original.Theme, loaded.Theme)
	assert.Equal(t, original.AppPath, loaded.AppPath)
	assert.Equal(t, original.Host, loaded.Host)
	assert.Equal(t, original.Port, loaded.Port)
	assert.Equal(t, original.Live, loaded.Live)
	assert.Equal(t, original.IncludeIcons, loaded.IncludeIcons)
	assert.Equal(t, original.Paths, loaded.Paths)
	assert.Equal(t, original.Components, loaded.Components)
	require.NotNil(t, loaded.Binary)
	assert.Equal(t, original.Binary.Version, loaded.Binary.Version)
	assert.Equal(t, original.Binary.SHA, loaded.Binary.SHA)
	assert.Equal(t, original.Binary.ReleaseID, loaded.Binary.ReleaseID)
	assert.True(t, original.Binary.DownloadedAt.Equal(loaded.Binary.DownloadedAt))
}

func TestSaveEmitsSyncComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, Save(Default(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "petal sync")
}

func TestSavePersistsBinaryMetadataKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, Save(testConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "binary_metadata:")
}

func TestLoadMissingFileIsNotInitialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotInitialized))
}

func TestLoadMalformedFileIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("style: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigParse))
	assert.Contains(t, err.Error(), path)
}

func TestLoadRejectsAbsolutePaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `style: daisy
theme: dark
app_path: main.go
host: localhost
port: 5001
paths:
  css: /etc/static/css
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigParse))
	assert.Contains(t, err.Error(), "project-relative")
}

func TestLoadRejectsMismatchedComponentKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `style: daisy
theme: dark
app_path: main.go
host: localhost
port: 5001
components:
  button:
    name: card
    kind: component
    path: components/ui/card.go
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigParse))
}

func TestAddThenRemoveRestoresComponentSet(t *testing.T) {
	cfg := testConfig()
	before := make(map[string]ComponentMetadata, len(cfg.Components))
	for k, v := range cfg.Components {
		before[k] = v
	}

	cfg.AddComponent(ComponentMetadata{Name: "card", Kind: KindComponent, Path: "components/ui/card.go"})
	assert.True(t, cfg.HasComponent("card"))

	require.NoError(t, cfg.RemoveComponent("card"))
	assert.Equal(t, before, cfg.Components)
}

func TestRemoveComponentMissing(t *testing.T) {
	cfg := Default()

	err := cfg.RemoveComponent("ghost")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrComponentNotFound))
}

func TestAddComponentOverwrites(t *testing.T) {
	cfg := Default()
	cfg.AddComponent(ComponentMetadata{Name: "button", Kind: KindComponent, Path: "components/ui/button.go"})
	cfg.AddComponent(ComponentMetadata{Name: "button", Kind: KindComponent, Path: "lib/button.go"})

	p, err := cfg.ComponentPath("button")
	require.NoError(t, err)
	assert.Equal(t, "lib/button.go", p)
	assert.Len(t, cfg.Components, 1)
}

func TestFailedSaveLeavesPreviousConfigIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	good := testConfig()
	require.NoError(t, Save(good, path))

	// A config that fails validation aborts the save before any write.
	bad := testConfig()
	bad.Port = -1
	require.Error(t, Save(bad, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, good.Port, loaded.Port)

	// No temp residue either.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveRenameFailureCleansUpTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	// Occupy the target path with a non-empty directory so the final
	// rename fails after the content has been written and synced.
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "occupied"), []byte("x"), 0o644))

	err := Save(testConfig(), path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindIO}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveIntoReadOnlyDirectoryLeavesConfigIntact(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	good := testConfig()
	require.NoError(t, Save(good, path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	bad := testConfig()
	bad.Theme = "light"
	err = Save(bad, path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindIO}))

	require.NoError(t, os.Chmod(dir, 0o755))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveIntoMissingDirectoryKeepsNothingBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope", FileName)

	err := Save(Default(), path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindIO}))
}

func TestBinaryNameMatchesPlatform(t *testing.T) {
	name := Default().BinaryName()
	assert.Contains(t, name, "tailwindcss-")
}

func TestPathFallsBackToDefaults(t *testing.T) {
	cfg := Default()
	delete(cfg.Paths, PathIcons)

	assert.Equal(t, filepath.FromSlash("static/icons"), cfg.Path(PathIcons))
	assert.Equal(t, filepath.FromSlash("components/ui"), cfg.Path(PathUI))
}
