package sim

import (
	"context"
	"errors"

	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/pde"
)

// Simulation owns the discretized field of one equation and advances it
// with a scheme fixed at construction. The scheme is resolved once,
// never re-looked-up per step.
type Simulation struct {
	g         *grid.Grid
	x         []float64
	u, uNext  pde.Field
	stepper   pde.Stepper
	dt        float64
	t         float64
	stepCount int

	metrics   []pde.Metric
	observers []pde.Observer
}

func New(g *grid.Grid, u0 pde.Field, stepper pde.Stepper, dt float64) (*Simulation, error) {
	if g == nil || g.N <= 0 {
		return nil, pde.ErrGridSize
	}
	if len(u0) != g.N {
		return nil, pde.ErrFieldSize
	}
	if stepper == nil {
		return nil, pde.ErrUnknownScheme
	}
	if dt <= 0 {
		return nil, pde.ErrTimestep
	}
	return &Simulation{
		g:       g,
		x:       g.Coords(),
		u:       u0.Clone(),
		uNext:   make(pde.Field, g.N),
		stepper: stepper,
		dt:      dt,
	}, nil
}

func (s *Simulation) AddMetric(m pde.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o pde.Observer) { s.observers = append(s.observers, o) }

// Advance takes one step: the scheme fills uNext from u, the buffers
// swap, and the clocks tick. After it returns u holds the new field and
// uNext is scratch for the following call; the two never alias.
func (s *Simulation) Advance() {
	s.stepper.Step(s.u, s.uNext)
	s.u, s.uNext = s.uNext, s.u
	s.t += s.dt
	s.stepCount++
}

// Field returns the live field slice. Callers may read it only between
// Advance calls.
func (s *Simulation) Field() pde.Field { return s.u }

// Snapshot returns an independent copy of the current field.
func (s *Simulation) Snapshot() pde.Field { return s.u.Clone() }

func (s *Simulation) Coords() []float64 { return s.x }
func (s *Simulation) Grid() *grid.Grid  { return s.g }
func (s *Simulation) Time() float64     { return s.t }
func (s *Simulation) Dt() float64       { return s.dt }
func (s *Simulation) StepCount() int    { return s.stepCount }

// Run advances the simulation cfg.Steps times, recording snapshots and
// feeding metrics and observers between steps. Divergence of an
// unstable scheme is reported in the result, not treated as a failure:
// the run stops once the field stops being finite.
func (s *Simulation) Run(ctx context.Context, cfg pde.RunConfig) (*pde.Result, error) {
	if cfg.Steps <= 0 {
		return nil, errors.New("sim: step count must be positive")
	}
	stride := cfg.SnapshotEvery
	if stride <= 0 {
		stride = 1
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &pde.Result{
		Snapshots: make([]pde.Field, 0, cfg.Steps/stride+1),
		Times:     make([]float64, 0, cfg.Steps/stride+1),
		Metrics:   make(map[string]float64),
	}
	result.Snapshots = append(result.Snapshots, s.Snapshot())
	result.Times = append(result.Times, s.t)

	for _, m := range s.metrics {
		m.Observe(s.u, s.t)
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.Advance()

		for _, m := range s.metrics {
			m.Observe(s.u, s.t)
		}
		for _, obs := range s.observers {
			obs.OnStep(s.u, s.t)
		}

		result.StepsTaken++

		if cfg.ValidateField && !s.u.IsValid() {
			result.Diverged = true
			result.Errors = append(result.Errors, pde.SimError{
				Step: s.stepCount, Time: s.t, Message: "field is no longer finite (NaN/Inf)",
			})
			result.Snapshots = append(result.Snapshots, s.Snapshot())
			result.Times = append(result.Times, s.t)
			break
		}

		if result.StepsTaken%stride == 0 {
			result.Snapshots = append(result.Snapshots, s.Snapshot())
			result.Times = append(result.Times, s.t)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
