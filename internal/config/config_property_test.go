//go:build property
// +build property

package config

import (
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSaveLoadRoundTripProperty checks that any valid configuration
// survives a Save/Load cycle unchanged.
func TestSaveLoadRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	identRunes := gen.Identifier()

	properties.Property("save then load preserves config", prop.ForAll(
		func(theme string, port int, live bool, names []string) bool {
			if port < 1 || port > 65535 {
				return true // out of model range
			}
			if theme == "" {
				return true
			}

			dir := t.TempDir()
			path := filepath.Join(dir, FileName)

			cfg := Default()
			cfg.Theme = theme
			cfg.Port = port
			cfg.Live = live
			for _, name := range names {
				if name == "" {
					continue
				}
				cfg.AddComponent(ComponentMetadata{
					Name: name,
					Kind: KindComponent,
					Path: "components/ui/" + name + ".go",
				})
			}

			if err := Save(cfg, path); err != nil {
				return false
			}
			loaded, err := Load(path)
			if err != nil {
				return false
			}

			if loaded.Theme != cfg.Theme || loaded.Port != cfg.Port || loaded.Live != cfg.Live {
				return false
			}
			if len(loaded.Components) != len(cfg.Components) {
				return false
			}
			for name, meta := range cfg.Components {
				got, ok := loaded.Components[name]
				if !ok || got != meta {
					return false
				}
			}
			return true
		},
		identRunes,
		gen.IntRange(1, 65535),
		gen.Bool(),
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
