package metrics

import "github.com/san-kum/pdelab/internal/pde"

// Stability reports the growth factor of the field's maximum absolute
// value relative to the initial observation. A stable scheme stays
// near or below 1; a diverging one grows without bound.
type Stability struct {
	name       string
	initialMax float64
	maxGrowth  float64
	samples    int
}

func NewStability() *Stability {
	return &Stability{name: "amplitude_growth"}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(u pde.Field, t float64) {
	max := u.MaxAbs()
	if s.samples == 0 {
		s.initialMax = max
	}
	s.samples++

	if s.initialMax == 0 {
		return
	}
	growth := max / s.initialMax
	if growth > s.maxGrowth {
		s.maxGrowth = growth
	}
}

func (s *Stability) Value() float64 {
	return s.maxGrowth
}

func (s *Stability) Reset() {
	s.initialMax = 0
	s.maxGrowth = 0
	s.samples = 0
}
