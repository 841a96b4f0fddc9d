package experiment

import (
	"fmt"

	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/schemes"
)

// burgersParams and advectionParams carry the constants a scheme
// constructor needs once the CFL timestep is known.
type burgersParams struct {
	dx, dt, nu float64
}

type advectionParams struct {
	c, dx, dt float64
}

// Registry holds the closed sets of schemes and waveforms per equation.
// Lookups happen once at build time; an unknown name is a configuration
// error and no simulation is produced.
type Registry struct {
	burgers   map[string]func(burgersParams) pde.Stepper
	advection map[string]func(advectionParams) pde.Stepper
	waveforms map[string]map[string]func(*grid.Grid) pde.Field
}

func NewRegistry() *Registry {
	r := &Registry{
		burgers:   make(map[string]func(burgersParams) pde.Stepper),
		advection: make(map[string]func(advectionParams) pde.Stepper),
		waveforms: make(map[string]map[string]func(*grid.Grid) pde.Field),
	}

	r.burgers["ftcs"] = func(p burgersParams) pde.Stepper { return schemes.NewBurgersFTCS(p.dx, p.dt, p.nu) }
	r.burgers["lax"] = func(p burgersParams) pde.Stepper { return schemes.NewBurgersLax(p.dx, p.dt, p.nu) }
	r.burgers["godunov"] = func(p burgersParams) pde.Stepper { return schemes.NewBurgersGodunov(p.dx, p.dt, p.nu) }

	r.advection["ftcs"] = func(p advectionParams) pde.Stepper { return schemes.NewAdvectionFTCS(p.c, p.dx, p.dt) }
	r.advection["lax"] = func(p advectionParams) pde.Stepper { return schemes.NewAdvectionLax(p.c, p.dx, p.dt) }
	r.advection["lax_wendroff"] = func(p advectionParams) pde.Stepper { return schemes.NewLaxWendroff(p.c, p.dx, p.dt) }

	r.waveforms["burgers"] = map[string]func(*grid.Grid) pde.Field{
		"sine": grid.Sine,
		"step": grid.Step,
	}
	r.waveforms["advection"] = map[string]func(*grid.Grid) pde.Field{
		"gaussian": grid.GaussianPulse,
		"step":     grid.StepPulse,
	}

	return r
}

func (r *Registry) Waveform(equation, name string) (func(*grid.Grid) pde.Field, error) {
	eq, ok := r.waveforms[equation]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pde.ErrUnknownEquation, equation)
	}
	fn, ok := eq[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (equation %s)", pde.ErrUnknownWaveform, name, equation)
	}
	return fn, nil
}

func (r *Registry) ListSchemes(equation string) []string {
	var names []string
	switch equation {
	case "burgers":
		for name := range r.burgers {
			names = append(names, name)
		}
	case "advection":
		for name := range r.advection {
			names = append(names, name)
		}
	}
	return names
}

// DefaultMetrics returns the scalar observations recorded for every
// run of the given equation.
func (r *Registry) DefaultMetrics(equation string) []pde.Metric {
	return []pde.Metric{
		metrics.NewConservation(),
		metrics.NewStability(),
		metrics.NewTotalVariation(),
	}
}
