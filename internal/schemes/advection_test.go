package schemes

import (
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func gaussianField(n int) pde.Field {
	u := make(pde.Field, n)
	sigma := 0.1
	for i := range u {
		x := float64(i) / float64(n)
		d := x - 0.5
		u[i] = math.Cos(math.Pi/sigma*d) * math.Exp(-d*d/(2*sigma*sigma))
	}
	return u
}

// At Courant number exactly 1 both Lax and Lax-Wendroff reduce to a
// pure shift: next[i] = u[i+1]. After N steps the field must return to
// its initial state exactly.
func TestExactTranslationAtUnitCourant(t *testing.T) {
	n := 128
	dx := 1.0 / float64(n)
	c := 1.0
	dt := dx / c

	steppers := map[string]pde.Stepper{
		"lax":          NewAdvectionLax(c, dx, dt),
		"lax_wendroff": NewLaxWendroff(c, dx, dt),
	}

	for name, s := range steppers {
		t.Run(name, func(t *testing.T) {
			u0 := gaussianField(n)
			u := u0.Clone()
			next := make(pde.Field, n)

			for step := 0; step < n; step++ {
				s.Step(u, next)
				u, next = next, u
			}

			for i := range u {
				if math.Abs(u[i]-u0[i]) > 1e-12 {
					t.Fatalf("field did not return to start at %d: %g vs %g", i, u[i], u0[i])
				}
			}
		})
	}
}

func TestAdvectionPeriodicWrap(t *testing.T) {
	n := 16
	dx := 1.0 / float64(n)
	u := make(pde.Field, n)
	next := make(pde.Field, n)
	u[0] = 1.0

	s := NewAdvectionLax(1.0, dx, 0.5*dx)
	s.Step(u, next)

	if next[n-1] == 0 {
		t.Error("cell 0 did not influence cell N-1 across the wrap")
	}
	if next[1] == 0 {
		t.Error("cell 0 did not influence cell 1")
	}
}

func TestLaxDampsAmplitude(t *testing.T) {
	// Below the stability boundary Lax loses amplitude every step.
	n := 128
	dx := 1.0 / float64(n)
	s := NewAdvectionLax(1.0, dx, 0.5*dx)

	u := gaussianField(n)
	initial := u.MaxAbs()
	next := make(pde.Field, n)

	for step := 0; step < 200; step++ {
		s.Step(u, next)
		u, next = next, u
	}

	if got := u.MaxAbs(); got >= initial {
		t.Errorf("expected damping, amplitude %f -> %f", initial, got)
	}
}

func TestLaxWendroffPreservesShapeBetterThanLax(t *testing.T) {
	n := 128
	dx := 1.0 / float64(n)
	dt := 0.5 * dx

	run := func(s pde.Stepper) pde.Field {
		u := gaussianField(n)
		next := make(pde.Field, n)
		for step := 0; step < 200; step++ {
			s.Step(u, next)
			u, next = next, u
		}
		return u
	}

	lax := run(NewAdvectionLax(1.0, dx, dt))
	lw := run(NewLaxWendroff(1.0, dx, dt))

	if lw.MaxAbs() <= lax.MaxAbs() {
		t.Errorf("Lax-Wendroff (%f) should keep more amplitude than Lax (%f)",
			lw.MaxAbs(), lax.MaxAbs())
	}
}
