package schemes

import (
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestInterfaceFlux(t *testing.T) {
	tests := []struct {
		name   string
		ul, ur float64
		want   float64
	}{
		{"both positive takes left", 2.0, 1.0, 2.0},
		{"both negative takes right", -1.0, -3.0, 4.5},
		{"rarefaction is zero", -1.0, 2.0, 0.0},
		{"shock takes larger", 2.0, -3.0, 4.5},
		{"tie is symmetric", 2.0, -2.0, 2.0},
		{"all zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interfaceFlux(tt.ul, tt.ur); got != tt.want {
				t.Errorf("flux(%f, %f): expected %f, got %f", tt.ul, tt.ur, tt.want, got)
			}
		})
	}
}

func TestBurgersPeriodicWrap(t *testing.T) {
	// A single nonzero cell at index 0 must influence index N-1 after
	// one step through the periodic boundary.
	n := 16
	u := make(pde.Field, n)
	next := make(pde.Field, n)
	u[0] = 1.0

	s := NewBurgersLax(1.0/float64(n), 0.01, 0)
	s.Step(u, next)

	if next[n-1] == 0 {
		t.Error("cell 0 did not influence cell N-1 across the wrap")
	}
	if next[1] == 0 {
		t.Error("cell 0 did not influence cell 1")
	}
	if next[2] != 0 {
		t.Errorf("cell 0 influenced cell 2 in a single step: %g", next[2])
	}
}

func TestGodunovConservesSumOneStep(t *testing.T) {
	n := 64
	dx := 1.0 / float64(n)
	u := make(pde.Field, n)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * float64(i) * dx)
	}
	next := make(pde.Field, n)

	s := NewBurgersGodunov(dx, 0.5*dx, 0)
	s.Step(u, next)

	before := u.Sum()
	after := next.Sum()
	if math.Abs(after-before) > 1e-12 {
		t.Errorf("flux differences did not telescope: sum %g -> %g", before, after)
	}
}

func TestViscousTermConservesSum(t *testing.T) {
	// The periodic diffusion stencil telescopes as well, so the sum is
	// conserved even with nonzero viscosity.
	n := 64
	dx := 1.0 / float64(n)
	u := make(pde.Field, n)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * float64(i) * dx)
	}
	next := make(pde.Field, n)

	s := NewBurgersGodunov(dx, 0.5*dx, 1e-6)
	s.Step(u, next)

	if diff := math.Abs(next.Sum() - u.Sum()); diff > 1e-12 {
		t.Errorf("sum drifted by %g with viscosity", diff)
	}
}

func TestBurgersSteppersOverwriteNext(t *testing.T) {
	n := 32
	dx := 1.0 / float64(n)
	u := make(pde.Field, n)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * float64(i) * dx)
	}

	steppers := map[string]pde.Stepper{
		"ftcs":    NewBurgersFTCS(dx, 0.1*dx, 1e-6),
		"lax":     NewBurgersLax(dx, 0.1*dx, 1e-6),
		"godunov": NewBurgersGodunov(dx, 0.1*dx, 1e-6),
	}

	for name, s := range steppers {
		t.Run(name, func(t *testing.T) {
			next := make(pde.Field, n)
			for i := range next {
				next[i] = math.NaN() // must be fully overwritten
			}
			s.Step(u, next)
			if !next.IsValid() {
				t.Error("stepper left stale values in the scratch buffer")
			}
		})
	}
}
