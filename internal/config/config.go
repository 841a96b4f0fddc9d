package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN         = 500
	DefaultL         = 1.0
	DefaultCFL       = 0.5
	DefaultWaveSpeed = 1.0
	DefaultViscosity = 1e-6
	DefaultSteps     = 1000
)

type Config struct {
	Equation      string  `yaml:"equation"`
	Scheme        string  `yaml:"scheme"`
	Waveform      string  `yaml:"waveform"`
	N             int     `yaml:"n"`
	L             float64 `yaml:"l"`
	CFL           float64 `yaml:"cfl"`
	WaveSpeed     float64 `yaml:"wave_speed"`
	Viscosity     float64 `yaml:"viscosity"`
	Steps         int     `yaml:"steps"`
	SnapshotEvery int     `yaml:"snapshot_every"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation:      "burgers",
		Scheme:        "godunov",
		Waveform:      "sine",
		N:             DefaultN,
		L:             DefaultL,
		CFL:           DefaultCFL,
		WaveSpeed:     DefaultWaveSpeed,
		Viscosity:     DefaultViscosity,
		Steps:         DefaultSteps,
		SnapshotEvery: 10,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
