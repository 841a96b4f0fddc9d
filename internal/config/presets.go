package config

var Presets = map[string]map[string]*Config{
	"burgers": {
		"shock": {
			Equation: "burgers", Scheme: "godunov", Waveform: "sine",
			N: 500, L: 1.0, CFL: 1.0, Viscosity: DefaultViscosity,
			Steps: 2000, SnapshotEvery: 20,
		},
		"square": {
			Equation: "burgers", Scheme: "godunov", Waveform: "step",
			N: 500, L: 1.0, CFL: 1.0, Viscosity: DefaultViscosity,
			Steps: 2000, SnapshotEvery: 20,
		},
		"diffusive": {
			Equation: "burgers", Scheme: "lax", Waveform: "sine",
			N: 500, L: 1.0, CFL: 0.5, Viscosity: DefaultViscosity,
			Steps: 2000, SnapshotEvery: 20,
		},
		"unstable": {
			Equation: "burgers", Scheme: "ftcs", Waveform: "sine",
			N: 200, L: 1.0, CFL: 0.5, Viscosity: DefaultViscosity,
			Steps: 200, SnapshotEvery: 5,
		},
	},
	"advection": {
		"gaussian": {
			Equation: "advection", Scheme: "lax_wendroff", Waveform: "gaussian",
			N: 500, L: 1.0, WaveSpeed: 1.0,
			Steps: 2000, SnapshotEvery: 20,
		},
		"square": {
			Equation: "advection", Scheme: "lax_wendroff", Waveform: "step",
			N: 500, L: 1.0, WaveSpeed: 1.0,
			Steps: 2000, SnapshotEvery: 20,
		},
		"damped": {
			Equation: "advection", Scheme: "lax", Waveform: "gaussian",
			N: 500, L: 1.0, WaveSpeed: 1.0,
			Steps: 2000, SnapshotEvery: 20,
		},
		"unstable": {
			Equation: "advection", Scheme: "ftcs", Waveform: "gaussian",
			N: 200, L: 1.0, WaveSpeed: 1.0,
			Steps: 200, SnapshotEvery: 5,
		},
	},
}

func GetPreset(equation, preset string) *Config {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := eqPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(equation string) []string {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(eqPresets))
	for name := range eqPresets {
		names = append(names, name)
	}
	return names
}
