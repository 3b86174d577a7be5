package cmd

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
)

// testProject points the CLI globals at a scratch project directory.
func testProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.Set("project", dir)
	t.Cleanup(func() { viper.Set("project", ".") })

	initSkipDownload = true
	initForce = false
	addForce = false
	syncForce = false
	removeKeepFiles = false
	t.Cleanup(func() { initSkipDownload = false })

	for _, c := range []interface{ SetContext(context.Context) }{
		initCmd, addCmd, removeCmd, syncCmd, listCmd,
	} {
		c.SetContext(context.Background())
	}
	return dir
}

func TestInitCreatesProject(t *testing.T) {
	dir := testProject(t)

	require.NoError(t, runInit(initCmd, nil))

	for _, p := range []string{
		config.FileName, "main.go", "go.mod",
		"components/ui", "static/css/input.css", "static/js", "static/icons",
	} {
		_, err := os.Stat(filepath.Join(dir, p))
		assert.NoError(t, err, p)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "daisy", cfg.Style)
	assert.Empty(t, cfg.Components)
}

func TestInitIsIdempotent(t *testing.T) {
	dir := testProject(t)

	require.NoError(t, runInit(initCmd, nil))

	// Tweak the config, re-run init, and the tweak must survive.
	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cfg.Theme = "cupcake"
	require.NoError(t, config.Save(cfg, cfgPath))

	require.NoError(t, runInit(initCmd, nil))

	cfg, err = config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "cupcake", cfg.Theme)
}

func TestAddWithoutInitFails(t *testing.T) {
	testProject(t)

	err := runAdd(addCmd, []string{"button"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotInitialized))
}

func TestAddInstallsAndWiresComponent(t *testing.T) {
	dir := testProject(t)
	require.NoError(t, runInit(initCmd, nil))

	require.NoError(t, runAdd(addCmd, []string{"button"}))

	_, err := os.Stat(filepath.Join(dir, "components", "ui", "button.go"))
	assert.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.HasComponent("button"))

	app, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "components/ui")
}

func TestAddUnknownComponent(t *testing.T) {
	testProject(t)
	require.NoError(t, runInit(initCmd, nil))

	err := runAdd(addCmd, []string{"carousel3000"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrComponentNotFound))
}

func TestRemoveDeletesFilesAndTracking(t *testing.T) {
	dir := testProject(t)
	require.NoError(t, runInit(initCmd, nil))
	require.NoError(t, runAdd(addCmd, []string{"card"}))

	require.NoError(t, runRemove(removeCmd, []string{"card"}))

	_, err := os.Stat(filepath.Join(dir, "components", "ui", "card.go"))
	assert.True(t, os.IsNotExist(err))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.False(t, cfg.HasComponent("card"))
}

func TestRemoveUnknownComponent(t *testing.T) {
	testProject(t)
	require.NoError(t, runInit(initCmd, nil))

	err := runRemove(removeCmd, []string{"ghost"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrComponentNotFound))
}

func TestSyncRegeneratesStylesheet(t *testing.T) {
	dir := testProject(t)
	require.NoError(t, runInit(initCmd, nil))

	// Pretend a binary is present so sync does not go to the network.
	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cfg.Binary = &config.BinaryMetadata{
		Style: "daisy", Version: "v1.0.0",
		DownloadedAt: time.Now().UTC(), SHA: "sha256:00", ReleaseID: 1,
	}
	require.NoError(t, config.Save(cfg, cfgPath))
	binPath := filepath.Join(dir, cfg.BinaryPath())
	require.NoError(t, os.MkdirAll(filepath.Dir(binPath), 0o755))
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/true\n"), 0o755))

	cssPath := filepath.Join(dir, "static", "css", "input.css")
	require.NoError(t, os.Remove(cssPath))

	require.NoError(t, runSync(syncCmd, nil))

	_, err = os.Stat(cssPath)
	assert.NoError(t, err)
}
