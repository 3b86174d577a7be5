// Package registry holds the catalog of components and blocks petal can
// install into a project.
//
// The registry is an explicitly constructed instance populated once at
// startup (see the builtin subpackage) and read-only afterwards. Commands
// receive the instance they need; nothing registers itself at import time,
// so there are no load-order dependencies between component definitions.
package registry

import (
	"sort"
	"sync"

	"github.com/a-h/templ"

	"github.com/petal-dev/petal/internal/errors"
)

// Kind distinguishes single components from composite blocks.
type Kind string

const (
	KindComponent Kind = "component"
	KindBlock     Kind = "block"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindComponent || k == KindBlock
}

// Renderer produces a representative preview of a definition.
type Renderer func() templ.Component

// Definition describes one installable component or block: its metadata,
// the source files scaffolded into a project when it is added, and a
// renderer for previews.
type Definition struct {
	Name         string
	Kind         Kind
	Description  string
	Author       string
	Categories   []string
	Dependencies []string
	// Files maps a relative output file name to its template text,
	// rendered by the scaffold package at install time.
	Files    map[string]string
	Renderer Renderer
}

// NewDefinition starts a definition builder.
func NewDefinition(name string, kind Kind) *Definition {
	return &Definition{
		Name:  name,
		Kind:  kind,
		Files: make(map[string]string),
	}
}

// WithDescription sets the one-line description shown by 'petal list'.
func (d *Definition) WithDescription(desc string) *Definition {
	d.Description = desc
	return d
}

// WithAuthor sets the definition author.
func (d *Definition) WithAuthor(author string) *Definition {
	d.Author = author
	return d
}

// WithCategories tags the definition for category lookups.
func (d *Definition) WithCategories(categories ...string) *Definition {
	d.Categories = append(d.Categories, categories...)
	return d
}

// WithDependencies names other definitions installed before this one.
func (d *Definition) WithDependencies(names ...string) *Definition {
	d.Dependencies = append(d.Dependencies, names...)
	return d
}

// WithFile adds a scaffolded source file template.
func (d *Definition) WithFile(name, tmpl string) *Definition {
	d.Files[name] = tmpl
	return d
}

// WithRenderer sets the preview renderer.
func (d *Definition) WithRenderer(r Renderer) *Definition {
	d.Renderer = r
	return d
}

// HasCategory reports whether the definition carries the category tag.
func (d *Definition) HasCategory(category string) bool {
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Registry is the catalog of known definitions, keyed by name.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition. Registering a name twice is an authoring
// error in a component definition and fails hard rather than silently
// shadowing the earlier entry.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return errors.NewInternal("registry.Register", "definition has no name", nil)
	}
	if !def.Kind.Valid() {
		return errors.NewInternal("registry.Register", "definition "+def.Name+" has unknown kind", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return errors.NewDuplicateComponent(def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	if !ok {
		return nil, errors.NewComponentNotFound(name)
	}
	return def, nil
}

// ByKind returns all definitions of the given kind, sorted by name for
// stable listings.
func (r *Registry) ByKind(kind Kind) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Definition
	for _, def := range r.defs {
		if def.Kind == kind {
			out = append(out, def)
		}
	}
	sortDefs(out)
	return out
}

// ByCategory returns all definitions tagged with category, sorted by name.
func (r *Registry) ByCategory(category string) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Definition
	for _, def := range r.defs {
		if def.HasCategory(category) {
			out = append(out, def)
		}
	}
	sortDefs(out)
	return out
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered definitions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

func sortDefs(defs []*Definition) {
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
}
