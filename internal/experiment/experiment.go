package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/sim"
)

// Build validates a configuration and assembles a ready simulation:
// grid, initial field, CFL timestep, and the scheme resolved to a
// concrete stepper. All validation happens here, once.
func (r *Registry) Build(cfg *config.Config) (*sim.Simulation, error) {
	g, err := grid.New(cfg.N, cfg.L)
	if err != nil {
		return nil, err
	}

	waveform, err := r.Waveform(cfg.Equation, cfg.Waveform)
	if err != nil {
		return nil, err
	}
	u0 := waveform(g)

	var stepper pde.Stepper
	var dt float64

	switch cfg.Equation {
	case "burgers":
		if cfg.CFL <= 0 {
			return nil, pde.ErrCFLRatio
		}
		umax := u0.MaxAbs()
		if umax == 0 {
			return nil, pde.ErrFlatField
		}
		dt = cfg.CFL * g.Dx / umax
		build, ok := r.burgers[cfg.Scheme]
		if !ok {
			return nil, fmt.Errorf("%w: %s (burgers schemes: %v)", pde.ErrUnknownScheme, cfg.Scheme, r.ListSchemes("burgers"))
		}
		stepper = build(burgersParams{dx: g.Dx, dt: dt, nu: cfg.Viscosity})
	case "advection":
		if cfg.WaveSpeed <= 0 {
			return nil, pde.ErrWaveSpeed
		}
		dt = g.Dx / cfg.WaveSpeed
		build, ok := r.advection[cfg.Scheme]
		if !ok {
			return nil, fmt.Errorf("%w: %s (advection schemes: %v)", pde.ErrUnknownScheme, cfg.Scheme, r.ListSchemes("advection"))
		}
		stepper = build(advectionParams{c: cfg.WaveSpeed, dx: g.Dx, dt: dt})
	default:
		return nil, fmt.Errorf("%w: %s", pde.ErrUnknownEquation, cfg.Equation)
	}

	return sim.New(g, u0, stepper, dt)
}

// Run builds a simulation from cfg, attaches the default metrics, and
// advances it for the configured number of steps.
func (r *Registry) Run(ctx context.Context, cfg *config.Config) (*pde.Result, error) {
	s, err := r.Build(cfg)
	if err != nil {
		return nil, err
	}
	for _, m := range r.DefaultMetrics(cfg.Equation) {
		s.AddMetric(m)
	}
	return s.Run(ctx, pde.RunConfig{
		Steps:         cfg.Steps,
		SnapshotEvery: cfg.SnapshotEvery,
		ValidateField: true,
	})
}
