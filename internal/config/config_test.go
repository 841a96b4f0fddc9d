package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Equation != "burgers" {
		t.Errorf("expected equation burgers, got %s", cfg.Equation)
	}
	if cfg.N <= 0 {
		t.Error("n should be positive")
	}
	if cfg.L <= 0 {
		t.Error("l should be positive")
	}
	if cfg.CFL <= 0 {
		t.Error("cfl should be positive")
	}
	if cfg.Viscosity != DefaultViscosity {
		t.Errorf("expected viscosity %g, got %g", DefaultViscosity, cfg.Viscosity)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Equation = "advection"
	cfg.Scheme = "lax_wendroff"
	cfg.Waveform = "step"
	cfg.N = 256
	cfg.WaveSpeed = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Equation != "advection" || loaded.Scheme != "lax_wendroff" {
		t.Errorf("round trip lost equation/scheme: %+v", loaded)
	}
	if loaded.N != 256 {
		t.Errorf("expected n 256, got %d", loaded.N)
	}
	if loaded.WaveSpeed != 2.5 {
		t.Errorf("expected wave speed 2.5, got %f", loaded.WaveSpeed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresetsCoverBothEquations(t *testing.T) {
	for _, eq := range []string{"burgers", "advection"} {
		names := ListPresets(eq)
		if len(names) == 0 {
			t.Errorf("no presets for %s", eq)
		}
		for _, name := range names {
			p := GetPreset(eq, name)
			if p == nil {
				t.Errorf("preset %s/%s listed but not loadable", eq, name)
				continue
			}
			if p.Equation != eq {
				t.Errorf("preset %s/%s names equation %s", eq, name, p.Equation)
			}
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	if GetPreset("burgers", "no_such") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("kdv", "shock") != nil {
		t.Error("expected nil for unknown equation")
	}
}
