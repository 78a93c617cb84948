package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != DefaultModel {
		t.Errorf("expected model %s, got %s", DefaultModel, cfg.Model)
	}
	if cfg.Method != "rk4" || cfg.Coupling != "staggered" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		isErr  error
	}{
		{"ok", func(*Config) {}, nil},
		{"no model", func(c *Config) { c.Model = "" }, nil},
		{"bad method", func(c *Config) { c.Method = "rk5" }, ode.ErrUnknownMethod},
		{"bad coupling", func(c *Config) { c.Coupling = "sideways" }, nil},
		{"negative steps", func(c *Config) { c.Steps = -1 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.name == "ok" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.isErr != nil && !errors.Is(err, tt.isErr) {
				t.Errorf("err = %v, want %v", err, tt.isErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "exp.yaml")
	cfg := &Config{
		Name:     "lv",
		Model:    "lotka_volterra",
		Method:   "ralston3",
		Coupling: "simultaneous",
		Tn:       2,
		Steps:    500,
		Init:     []float64{1000, 50},
		Limit:    1e6,
		Params:   map[string]float64{"alpha1": 12},
		Outputs:  []string{"out/lv.png", "out/lv.html"},
		Store:    true,
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	if err := os.WriteFile(path, []byte("model: gompertz\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "gompertz" || cfg.Method != DefaultMethod || cfg.Coupling != "staggered" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	data := `experiments:
  - model: lotka_volterra
    method: euler
    steps: 100
  - name: seir
    model: seir1
    params:
      b: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(f.Experiments) != 2 {
		t.Fatalf("experiments = %d, want 2", len(f.Experiments))
	}
	if f.Experiments[1].Method != DefaultMethod || f.Experiments[1].Params["b"] != 0.5 {
		t.Errorf("second experiment = %+v", f.Experiments[1])
	}
	if f.Experiments[0].Coupling != "staggered" {
		t.Errorf("coupling default not applied: %q", f.Experiments[0].Coupling)
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := SaveFile(empty, &File{}); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); !errors.Is(err, ErrNoExperiments) {
		t.Errorf("err = %v, want ErrNoExperiments", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lotka_volterra", "simultaneous")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Coupling != "simultaneous" {
		t.Errorf("expected simultaneous coupling, got %s", cfg.Coupling)
	}

	cfg.Tn = 99
	if again := GetPreset("lotka_volterra", "simultaneous"); again.Tn == 99 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lotka_volterra", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("lotka_volterra")
	if want := []string{"coarse_euler", "simultaneous", "staggered"}; !reflect.DeepEqual(presets, want) {
		t.Errorf("presets = %v, want %v", presets, want)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsValid(t *testing.T) {
	for model, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Model != model {
				t.Errorf("%s/%s: model %q", model, name, cfg.Model)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", model, name, err)
			}
		}
	}
}
