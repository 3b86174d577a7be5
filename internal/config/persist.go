package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petal-dev/petal/internal/errors"
)

// header is emitted before the YAML body on every save. Parsers treat it
// as comments, so Load round-trips without special handling.
const header = `# petal project configuration
#
# This file is regenerated by petal on every change it makes. Manual edits
# are preserved, but after changing volatile fields (host, port, live)
# run 'petal sync' to propagate them into generated files.
`

// Load reads and validates the project configuration at path.
//
// A missing file is reported as a not-initialized error so commands can
// tell the user to run 'petal init'; anything else that fails to parse or
// validate is a config-parse error naming the file.
func Load(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotInitialized(path)
		}
		return nil, errors.NewIO("config.Load", path, err)
	}

	cfg := Default()
	// Loaded maps replace the defaults instead of merging into them.
	cfg.Paths = nil
	cfg.Components = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.NewConfigParse(path, err)
	}

	if cfg.Paths == nil {
		cfg.Paths = DefaultPaths()
	}
	if cfg.Components == nil {
		cfg.Components = make(map[string]ComponentMetadata)
	}

	if err := validate(cfg); err != nil {
		return nil, errors.NewConfigParse(path, err)
	}
	return cfg, nil
}

// Save renders cfg and writes it to path atomically: the content goes to
// a temp file in the same directory which is then renamed over the
// target, so a crash mid-write leaves the previous file intact.
func Save(cfg *ProjectConfig, path string) error {
	if err := validate(cfg); err != nil {
		return errors.NewConfigParse(path, err)
	}
	normalize(cfg)

	var buf bytes.Buffer
	buf.WriteString(header)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.NewInternal("config.Save", "cannot encode configuration", err)
	}
	if err := enc.Close(); err != nil {
		return errors.NewInternal("config.Save", "cannot encode configuration", err)
	}

	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

// writeFileAtomic writes data to a same-directory temp file, syncs it,
// and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".petal-*.tmp")
	if err != nil {
		return errors.NewIO("config.Save", path, err)
	}
	tmpName := tmp.Name()

	writeErr := func() error {
		defer tmp.Close()
		if _, err := tmp.Write(data); err != nil {
			return err
		}
		if err := tmp.Chmod(perm); err != nil {
			return err
		}
		return tmp.Sync()
	}()
	if writeErr != nil {
		os.Remove(tmpName)
		return errors.NewIO("config.Save", path, writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.NewIO("config.Save", path, err)
	}
	return nil
}

// normalize rewrites all stored paths as slash-separated relative paths.
func normalize(cfg *ProjectConfig) {
	cfg.AppPath = filepath.ToSlash(cfg.AppPath)
	for k, v := range cfg.Paths {
		cfg.Paths[k] = filepath.ToSlash(v)
	}
	for k, v := range cfg.Components {
		v.Path = filepath.ToSlash(v.Path)
		cfg.Components[k] = v
	}
}

func validate(cfg *ProjectConfig) error {
	if cfg.Style != "daisy" && cfg.Style != "vanilla" {
		return fmt.Errorf("style must be daisy or vanilla, got %q", cfg.Style)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", cfg.Port)
	}
	if err := validatePath("app_path", cfg.AppPath); err != nil {
		return err
	}
	for area, p := range cfg.Paths {
		if err := validatePath("paths."+area, p); err != nil {
			return err
		}
	}
	for key, meta := range cfg.Components {
		if key != meta.Name {
			return fmt.Errorf("components key %q does not match entry name %q", key, meta.Name)
		}
		if meta.Kind != KindComponent && meta.Kind != KindBlock {
			return fmt.Errorf("component %q has unknown kind %q", key, meta.Kind)
		}
		if err := validatePath("components."+key+".path", meta.Path); err != nil {
			return err
		}
	}
	return nil
}

// validatePath enforces the portability invariant: project-relative,
// no traversal outside the project.
func validatePath(field, p string) error {
	if p == "" {
		return fmt.Errorf("%s is empty", field)
	}
	if filepath.IsAbs(p) || strings.HasPrefix(filepath.ToSlash(p), "/") {
		return fmt.Errorf("%s must be project-relative, got absolute path %q", field, p)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%s escapes the project root: %q", field, p)
	}
	return nil
}
