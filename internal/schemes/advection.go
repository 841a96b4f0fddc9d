package schemes

import "github.com/san-kum/pdelab/internal/pde"

// AdvectionFTCS is forward-time centered-space for the linear wave
// equation. Unconditionally unstable; kept to demonstrate the
// instability.
type AdvectionFTCS struct {
	c, dx, dt float64
}

func NewAdvectionFTCS(c, dx, dt float64) *AdvectionFTCS {
	return &AdvectionFTCS{c: c, dx: dx, dt: dt}
}

func (s *AdvectionFTCS) Step(u, next pde.Field) {
	n := len(u)
	adv := s.c * s.dt / (2 * s.dx)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = u[i] - adv*(u[im]-u[ip])
	}
}

// AdvectionLax is stable for Courant numbers c*dt/dx <= 1 and damps
// the waveform amplitude over time.
type AdvectionLax struct {
	c, dx, dt float64
}

func NewAdvectionLax(c, dx, dt float64) *AdvectionLax {
	return &AdvectionLax{c: c, dx: dx, dt: dt}
}

func (s *AdvectionLax) Step(u, next pde.Field) {
	n := len(u)
	adv := s.c * s.dt / (2 * s.dx)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = 0.5*(u[im]+u[ip]) - adv*(u[im]-u[ip])
	}
}

// LaxWendroff is second-order accurate, stable for Courant numbers
// <= 1, and best preserves the waveform shape of the three.
type LaxWendroff struct {
	c, dx, dt float64
}

func NewLaxWendroff(c, dx, dt float64) *LaxWendroff {
	return &LaxWendroff{c: c, dx: dx, dt: dt}
}

func (s *LaxWendroff) Step(u, next pde.Field) {
	n := len(u)
	cr := s.c * s.dt / s.dx
	adv := cr / 2
	d := cr * cr / 2
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = u[i] - adv*(u[im]-u[ip]) + d*(u[im]+u[ip]-2*u[i])
	}
}
