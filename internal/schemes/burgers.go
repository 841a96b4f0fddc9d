package schemes

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// DefaultViscosity is the small physical viscosity added to every
// Burgers scheme to regularize the shock front.
const DefaultViscosity = 1e-6

// BurgersFTCS is forward-time centered-space for the inviscid Burgers
// equation plus a viscosity term. Unconditionally unstable at any
// practical timestep; kept to demonstrate the instability.
type BurgersFTCS struct {
	dx, dt, nu float64
}

func NewBurgersFTCS(dx, dt, nu float64) *BurgersFTCS {
	return &BurgersFTCS{dx: dx, dt: dt, nu: nu}
}

func (s *BurgersFTCS) Step(u, next pde.Field) {
	n := len(u)
	adv := s.dt / (2 * s.dx)
	dif := s.nu * s.dt / (s.dx * s.dx)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = u[i]*(1-adv*(u[ip]-u[im])) + dif*(u[ip]+u[im]-2*u[i])
	}
}

// BurgersLax replaces the center value with the neighbor average,
// which stabilizes the scheme at the cost of extra numerical
// dissipation; shock fronts decay faster than physically correct.
type BurgersLax struct {
	dx, dt, nu float64
}

func NewBurgersLax(dx, dt, nu float64) *BurgersLax {
	return &BurgersLax{dx: dx, dt: dt, nu: nu}
}

func (s *BurgersLax) Step(u, next pde.Field) {
	n := len(u)
	adv := s.dt / (2 * s.dx)
	dif := s.nu * s.dt / (s.dx * s.dx)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = 0.5*(u[ip]+u[im]) - u[i]*adv*(u[ip]-u[im]) + dif*(u[ip]+u[im]-2*u[i])
	}
}

// BurgersGodunov is the flux-conservative upwind scheme. The interface
// flux picks the larger of the squared positive-part flux from the left
// cell and squared negative-part flux from the right cell, so
// information always comes from the upwind side. The flux differences
// telescope over the periodic ring, conserving the discrete sum of u
// exactly when nu = 0.
type BurgersGodunov struct {
	dx, dt, nu float64
}

func NewBurgersGodunov(dx, dt, nu float64) *BurgersGodunov {
	return &BurgersGodunov{dx: dx, dt: dt, nu: nu}
}

// interfaceFlux is the Godunov flux at the boundary between a left and
// right cell. When the two candidates tie the choice is irrelevant by
// symmetry.
func interfaceFlux(ul, ur float64) float64 {
	up := math.Max(ul, 0)
	um := math.Min(ur, 0)
	return 0.5 * math.Max(up*up, um*um)
}

func (s *BurgersGodunov) Step(u, next pde.Field) {
	n := len(u)
	r := s.dt / s.dx
	dif := s.nu * s.dt / (s.dx * s.dx)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		fPlus := interfaceFlux(u[i], u[ip])
		fMinus := interfaceFlux(u[im], u[i])
		next[i] = u[i] - r*(fPlus-fMinus) + dif*(u[ip]+u[im]-2*u[i])
	}
}
