package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hexgrid/internal/tilemap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexgrid.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// HOME points at an empty dir and the working directory has no configs/,
	// so Load falls through to the embedded YAML.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := Default()
	if cfg.Map != def.Map {
		t.Errorf("Map = %+v, expected %+v", cfg.Map, def.Map)
	}
	if cfg.Generator.Kind != def.Generator.Kind || len(cfg.Generator.Bands) != len(def.Generator.Bands) {
		t.Errorf("Generator = %+v, expected %+v", cfg.Generator, def.Generator)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
map:
  width: 9
  height: 4
  wraps_x: false
generator:
  kind: alternation
  tiles: [dirt, grass]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Map.Width != 9 || cfg.Map.Height != 4 || cfg.Map.WrapsX {
		t.Errorf("Map = %+v, expected 9x4 without wrapping", cfg.Map)
	}
	if cfg.Generator.Kind != GeneratorAlternation {
		t.Errorf("Generator.Kind = %q, expected %q", cfg.Generator.Kind, GeneratorAlternation)
	}
	// Omitted sections keep their defaults.
	if cfg.Tiles.File != DefaultTileFile {
		t.Errorf("Tiles.File = %q, expected %q", cfg.Tiles.File, DefaultTileFile)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"malformed yaml", "map: [", false},
		{"width overflows", "map:\n  width: 300\n", false},
		{"unknown generator", "generator:\n  kind: voronoi\n", true},
		{"noise without bands", "generator:\n  kind: noise\n  bands: []\n", true},
		{"bands out of order", "generator:\n  kind: noise\n  bands:\n    - {below: 0.5, tile: a}\n    - {below: 0.2, tile: b}\n", true},
		{"alternation without tiles", "generator:\n  kind: alternation\n  tiles: []\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, expected %v", err, ErrInvalid)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestLoadTileTypesEmbedded(t *testing.T) {
	types, err := Default().LoadTileTypes()
	if err != nil {
		t.Fatalf("LoadTileTypes() failed: %v", err)
	}
	for _, name := range []string{tilemap.UnknownTile, "dirt", "grass", "water", "sand", "mountain"} {
		if _, ok := types.Index(name); !ok {
			t.Errorf("embedded tile types missing %q", name)
		}
	}
}

func TestLoadTileTypesFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("- name: lava\n  glyph: \"*\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg := Default()
	cfg.Tiles = TilesConfig{Dir: dir, File: "custom.yaml"}
	types, err := cfg.LoadTileTypes()
	if err != nil {
		t.Fatalf("LoadTileTypes() failed: %v", err)
	}
	if types.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", types.Len())
	}
}

func TestNewGenerator(t *testing.T) {
	types, err := Default().LoadTileTypes()
	if err != nil {
		t.Fatalf("LoadTileTypes() failed: %v", err)
	}

	tests := []struct {
		name    string
		gen     GeneratorConfig
		wantErr bool
	}{
		{"fill", GeneratorConfig{Kind: GeneratorFill, Tiles: []string{"water"}}, false},
		{"alternation", GeneratorConfig{Kind: GeneratorAlternation, Tiles: []string{"dirt", "grass"}}, false},
		{"noise", Default().Generator, false},
		{"fill unknown tile", GeneratorConfig{Kind: GeneratorFill, Tiles: []string{"lava"}}, true},
		{"unknown kind", GeneratorConfig{Kind: "voronoi"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Generator = tc.gen
			gen, err := cfg.NewGenerator(types)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewGenerator() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if _, err := tilemap.New(7, 7, true, gen, nil); err != nil {
				t.Errorf("tilemap.New() failed: %v", err)
			}
		})
	}
}

func TestSizePresets(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint8
	}{
		{"tiny", 15, 11},
		{"standard", 47, 23},
		{"max", 255, 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseSizePreset(tc.name)
			if err != nil {
				t.Fatalf("ParseSizePreset(%q) failed: %v", tc.name, err)
			}
			cfg := Default()
			ApplySizePreset(&cfg, p)
			if cfg.Map.Width != tc.width || cfg.Map.Height != tc.height {
				t.Errorf("Map = %dx%d, expected %dx%d", cfg.Map.Width, cfg.Map.Height, tc.width, tc.height)
			}
		})
	}

	if _, err := ParseSizePreset("gigantic"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseSizePreset(gigantic) error = %v, expected %v", err, ErrInvalid)
	}
}
