// Package config manages the petal project configuration.
//
// A project is described by a single petal.yml at the project root. The
// file is regenerated in full from the in-memory ProjectConfig on every
// save; manual edits to volatile fields (host, port, live) survive but
// require a 'petal sync' to propagate into generated files, which the
// comment header emitted by Save points out.
//
// All paths stored in the configuration are project-relative and
// slash-separated so the file stays portable across checkouts and
// operating systems.
package config

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/petal-dev/petal/internal/errors"
)

// FileName is the project configuration file, always at the project root.
const FileName = "petal.yml"

// BinDir is where downloaded CSS binaries live, relative to the project root.
const BinDir = ".petal/bin"

// Component kinds. Stored as plain strings in the config file.
const (
	KindComponent = "component"
	KindBlock     = "block"
)

// ComponentMetadata records one installed component or block.
type ComponentMetadata struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// BinaryMetadata records the provenance of a downloaded CSS build binary.
// It is replaced wholesale on re-download and absent until the first one.
type BinaryMetadata struct {
	Style        string    `yaml:"style"`
	Version      string    `yaml:"version"`
	DownloadedAt time.Time `yaml:"downloaded_at"`
	SHA          string    `yaml:"sha"`
	ReleaseID    int64     `yaml:"release_id"`
}

// ProjectConfig is the persisted settings and installed-component record
// for one project. One instance per CLI invocation: loaded at startup,
// mutated in memory by commands, re-serialized on save.
type ProjectConfig struct {
	Style        string                       `yaml:"style"`
	Theme        string                       `yaml:"theme"`
	AppPath      string                       `yaml:"app_path"`
	Host         string                       `yaml:"host"`
	Port         int                          `yaml:"port"`
	Live         bool                         `yaml:"live"`
	IncludeIcons bool                         `yaml:"include_icons"`
	Verbose      bool                         `yaml:"verbose"`
	Paths        map[string]string            `yaml:"paths"`
	Binary       *BinaryMetadata              `yaml:"binary_metadata,omitempty"`
	Components   map[string]ComponentMetadata `yaml:"components"`
}

// Logical path areas every project has. Keys of ProjectConfig.Paths.
const (
	PathComponents = "components"
	PathUI         = "ui"
	PathStatic     = "static"
	PathCSS        = "css"
	PathJS         = "js"
	PathIcons      = "icons"
)

// DefaultPaths returns the standard project layout.
func DefaultPaths() map[string]string {
	return map[string]string{
		PathComponents: "components",
		PathUI:         "components/ui",
		PathStatic:     "static",
		PathCSS:        "static/css",
		PathJS:         "static/js",
		PathIcons:      "static/icons",
	}
}

// Default returns a ProjectConfig with the settings a fresh init uses.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Style:        "daisy",
		Theme:        "dark",
		AppPath:      "main.go",
		Host:         "localhost",
		Port:         5001,
		Live:         true,
		IncludeIcons: true,
		Verbose:      true,
		Paths:        DefaultPaths(),
		Components:   make(map[string]ComponentMetadata),
	}
}

// AddComponent inserts or overwrites the entry keyed by meta.Name. It does
// not touch the filesystem copy of the component files; installing those
// is the caller's job.
func (c *ProjectConfig) AddComponent(meta ComponentMetadata) {
	if c.Components == nil {
		c.Components = make(map[string]ComponentMetadata)
	}
	meta.Path = filepath.ToSlash(meta.Path)
	c.Components[meta.Name] = meta
}

// RemoveComponent deletes the entry for name. It errors if the name is
// not tracked, so a typo in 'petal remove' is reported instead of being a
// silent no-op.
func (c *ProjectConfig) RemoveComponent(name string) error {
	if _, ok := c.Components[name]; !ok {
		return errors.NewComponentNotFound(name)
	}
	delete(c.Components, name)
	return nil
}

// HasComponent reports whether name is tracked as installed.
func (c *ProjectConfig) HasComponent(name string) bool {
	_, ok := c.Components[name]
	return ok
}

// ComponentPath returns the recorded install path for name.
func (c *ProjectConfig) ComponentPath(name string) (string, error) {
	meta, ok := c.Components[name]
	if !ok {
		return "", errors.NewComponentNotFound(name)
	}
	return meta.Path, nil
}

// Path returns the configured directory for a logical area, falling back
// to the default layout for areas a hand-edited file dropped.
func (c *ProjectConfig) Path(area string) string {
	if p, ok := c.Paths[area]; ok && p != "" {
		return filepath.FromSlash(p)
	}
	return filepath.FromSlash(DefaultPaths()[area])
}

// BinaryName returns the platform-specific name of the CSS build binary.
func (c *ProjectConfig) BinaryName() string {
	arch := "x64"
	if runtime.GOARCH == "arm64" {
		arch = "arm64"
	}
	switch runtime.GOOS {
	case "darwin":
		return "tailwindcss-macos-" + arch
	case "windows":
		return "tailwindcss-windows-x64.exe"
	default:
		return "tailwindcss-linux-" + arch
	}
}

// BinaryPath returns the project-relative path of the CSS build binary.
func (c *ProjectConfig) BinaryPath() string {
	return filepath.Join(filepath.FromSlash(BinDir), c.BinaryName())
}
