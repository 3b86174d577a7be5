// Package scaffold renders petal's file templates into a project tree:
// component sources from registry definitions, the project input.css, and
// the application entry point.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
	"github.com/petal-dev/petal/internal/registry"
)

// Context carries the values available to every file template.
type Context struct {
	Package   string // package name of generated component sources
	Component string // exported identifier of the definition being rendered
	Project   string // project (directory) name
	Style     string
	Theme     string
	Host      string
	Port      int
	Live      bool
	CSSPath   string // project-relative path of the built stylesheet
	Date      string
}

// NewContext builds a template context from a project configuration.
func NewContext(cfg *config.ProjectConfig, projectName string) Context {
	return Context{
		Package: filepath.Base(cfg.Path(config.PathUI)),
		Project: projectName,
		Style:   cfg.Style,
		Theme:   cfg.Theme,
		Host:    cfg.Host,
		Port:    cfg.Port,
		Live:    cfg.Live,
		CSSPath: filepath.ToSlash(filepath.Join(cfg.Path(config.PathCSS), "output.css")),
		Date:    time.Now().Format("2006-01-02"),
	}
}

// Render executes one file template against ctx.
func Render(name, text string, ctx Context) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, errors.NewInternal("scaffold.Render", "invalid template "+name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, errors.NewInternal("scaffold.Render", "cannot render "+name, err)
	}
	return buf.Bytes(), nil
}

// RenderToFile renders a template and writes it, creating parent
// directories as needed.
func RenderToFile(name, text string, ctx Context, path string) error {
	data, err := Render(name, text, ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewIO("scaffold.RenderToFile", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIO("scaffold.RenderToFile", path, err)
	}
	return nil
}

// InstallDir returns the directory a definition installs into, relative
// to the project root: single-file entries go to the ui directory,
// multi-file blocks get their own directory under components.
func InstallDir(def *registry.Definition, cfg *config.ProjectConfig) string {
	if def.Kind == registry.KindBlock && len(def.Files) > 1 {
		return filepath.Join(cfg.Path(config.PathComponents), def.Name)
	}
	if def.Kind == registry.KindBlock {
		return cfg.Path(config.PathComponents)
	}
	return cfg.Path(config.PathUI)
}

// Install renders a definition's files into the project under root,
// pulling in registry dependencies first, and records every installed
// definition in cfg. Existing files are only overwritten with force: a
// collision anywhere in the plan, dependencies included, makes Install
// decline before writing anything and return (false, nil) so the caller
// can confirm. cfg is only mutated, not saved; persisting is the
// caller's job.
func Install(reg *registry.Registry, def *registry.Definition, cfg *config.ProjectConfig, root string, force bool, ctx Context) (bool, error) {
	plan, err := installPlan(reg, def, cfg, make(map[string]bool))
	if err != nil {
		return false, err
	}

	if !force {
		for _, d := range plan {
			dir := InstallDir(d, cfg)
			for name := range d.Files {
				if _, err := os.Stat(filepath.Join(root, dir, name)); err == nil {
					return false, nil
				}
			}
		}
	}

	for _, d := range plan {
		dir := InstallDir(d, cfg)
		dctx := ctx
		dctx.Component = ExportedName(d.Name)

		var first string
		for name, text := range d.Files {
			if first == "" || name < first {
				first = name
			}
			if err := RenderToFile(name, text, dctx, filepath.Join(root, dir, name)); err != nil {
				return false, err
			}
		}

		cfg.AddComponent(config.ComponentMetadata{
			Name: d.Name,
			Kind: string(d.Kind),
			Path: filepath.ToSlash(filepath.Join(dir, first)),
		})
	}
	return true, nil
}

// installPlan resolves def and its transitive dependencies into
// dependency-first order, skipping definitions cfg already tracks.
func installPlan(reg *registry.Registry, def *registry.Definition, cfg *config.ProjectConfig, seen map[string]bool) ([]*registry.Definition, error) {
	if seen[def.Name] {
		return nil, nil
	}
	seen[def.Name] = true

	var plan []*registry.Definition
	for _, dep := range def.Dependencies {
		if cfg.HasComponent(dep) {
			continue
		}
		depDef, err := reg.Get(dep)
		if err != nil {
			return nil, err
		}
		sub, err := installPlan(reg, depDef, cfg, seen)
		if err != nil {
			return nil, err
		}
		plan = append(plan, sub...)
	}
	return append(plan, def), nil
}

// ExportedName converts a registry name like "contact-form" to an
// exported Go identifier like "ContactForm".
func ExportedName(name string) string {
	title := cases.Title(language.English)
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, p := range parts {
		parts[i] = title.String(p)
	}
	return strings.Join(parts, "")
}
