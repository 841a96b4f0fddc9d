package metrics

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// Conservation tracks the relative drift of the discrete sum of the
// field from its initial value. A flux-conservative scheme keeps this
// at floating-point noise when viscosity is zero.
type Conservation struct {
	name       string
	initialSum float64
	maxDrift   float64
	samples    int
}

func NewConservation() *Conservation {
	return &Conservation{name: "conservation_drift"}
}

func (c *Conservation) Name() string { return c.name }

func (c *Conservation) Observe(u pde.Field, t float64) {
	sum := u.Sum()
	if c.samples == 0 {
		c.initialSum = sum
	}
	c.samples++

	ref := math.Abs(c.initialSum)
	if ref < 1 {
		ref = 1
	}
	drift := math.Abs(sum-c.initialSum) / ref
	if drift > c.maxDrift {
		c.maxDrift = drift
	}
}

func (c *Conservation) Value() float64 {
	return c.maxDrift
}

func (c *Conservation) Reset() {
	c.initialSum = 0
	c.maxDrift = 0
	c.samples = 0
}
