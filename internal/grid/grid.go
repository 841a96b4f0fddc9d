package grid

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// Grid describes a uniform periodic 1-D grid of N points spanning [0, L).
type Grid struct {
	N  int
	L  float64
	Dx float64
}

func New(n int, l float64) (*Grid, error) {
	if n <= 0 {
		return nil, pde.ErrGridSize
	}
	if l <= 0 {
		return nil, pde.ErrDomainLength
	}
	return &Grid{N: n, L: l, Dx: l / float64(n)}, nil
}

// Coords returns the coordinate array x[i] = i*dx. Computed once per
// call; callers cache it for the simulation's lifetime.
func (g *Grid) Coords() []float64 {
	x := make([]float64, g.N)
	for i := range x {
		x[i] = float64(i) * g.Dx
	}
	return x
}

// Wrap maps an index onto the periodic grid, so Wrap(-1) == N-1 and
// Wrap(N) == 0.
func (g *Grid) Wrap(i int) int {
	return ((i % g.N) + g.N) % g.N
}

// Sample evaluates f at every grid coordinate.
func (g *Grid) Sample(f func(x float64) float64) pde.Field {
	u := make(pde.Field, g.N)
	for i := range u {
		u[i] = f(float64(i) * g.Dx)
	}
	return u
}

// Sine is the smooth Burgers initial condition sin(2πx) + 0.5 sin(πx).
func Sine(g *Grid) pde.Field {
	return g.Sample(func(x float64) float64 {
		return math.Sin(2*math.Pi*x) + 0.5*math.Sin(math.Pi*x)
	})
}

// Step is the Burgers square-wave initial condition, 1 on the middle
// half of the domain and 0 elsewhere.
func Step(g *Grid) pde.Field {
	return g.Sample(func(x float64) float64 {
		if x > 0.25*g.L && x < 0.75*g.L {
			return 1.0
		}
		return 0.0
	})
}

// GaussianPulse is the advection initial condition: a cosine carrier
// modulated by a Gaussian envelope centered at L/2 with width 0.1L.
func GaussianPulse(g *Grid) pde.Field {
	x0 := g.L / 2
	sigma := 0.1 * g.L
	k := math.Pi / sigma
	return g.Sample(func(x float64) float64 {
		d := x - x0
		return math.Cos(k*d) * math.Exp(-d*d/(2*sigma*sigma))
	})
}

// StepPulse is the discrete advection pulse, 1 within one envelope
// width of the domain center and 0 elsewhere.
func StepPulse(g *Grid) pde.Field {
	x0 := g.L / 2
	sigma := 0.1 * g.L
	return g.Sample(func(x float64) float64 {
		if math.Abs(x-x0) < sigma {
			return 1.0
		}
		return 0.0
	})
}
