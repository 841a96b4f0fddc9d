package schemes_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/schemes"
)

func advance(s pde.Stepper, u pde.Field, steps int) pde.Field {
	next := make(pde.Field, len(u))
	for i := 0; i < steps; i++ {
		s.Step(u, next)
		u, next = next, u
	}
	return u
}

// divergedOrHuge is the expected end state of an unconditionally
// unstable scheme: either the field overflowed to Inf/NaN or its
// amplitude grew by a large factor.
func divergedOrHuge(u pde.Field, initialMax float64) bool {
	return !u.IsValid() || u.MaxAbs() > 1e3*initialMax
}

var _ = Describe("Godunov conservation", func() {
	It("keeps the discrete sum invariant over many steps with zero viscosity", func() {
		g, err := grid.New(500, 1.0)
		Expect(err).NotTo(HaveOccurred())

		u0 := grid.Sine(g)
		dt := g.Dx / u0.MaxAbs()
		s := schemes.NewBurgersGodunov(g.Dx, dt, 0)

		before := u0.Sum()
		u := advance(s, u0.Clone(), 200)
		after := u.Sum()

		ref := math.Max(1, math.Abs(before))
		Expect(math.Abs(after-before) / ref).To(BeNumerically("<", 1e-9))
	})

	It("conserves the sum for the step waveform as well", func() {
		g, err := grid.New(256, 1.0)
		Expect(err).NotTo(HaveOccurred())

		u0 := grid.Step(g)
		dt := g.Dx / u0.MaxAbs()
		s := schemes.NewBurgersGodunov(g.Dx, dt, 0)

		before := u0.Sum()
		u := advance(s, u0.Clone(), 300)

		Expect(math.Abs(u.Sum()-before) / math.Abs(before)).To(BeNumerically("<", 1e-9))
		Expect(u.IsValid()).To(BeTrue())
	})
})

var _ = Describe("Lax stability boundary", func() {
	It("stays bounded below Courant number 1", func() {
		n := 128
		dx := 1.0 / float64(n)
		dt := 0.99 * dx
		s := schemes.NewAdvectionLax(1.0, dx, dt)

		g, _ := grid.New(n, 1.0)
		u0 := grid.GaussianPulse(g)
		initial := u0.MaxAbs()

		u := advance(s, u0.Clone(), 500)

		Expect(u.IsValid()).To(BeTrue())
		Expect(u.MaxAbs()).To(BeNumerically("<=", initial*1.01))
	})

	It("diverges above Courant number 1", func() {
		n := 128
		dx := 1.0 / float64(n)
		dt := 1.5 * dx
		s := schemes.NewAdvectionLax(1.0, dx, dt)

		g, _ := grid.New(n, 1.0)
		u0 := grid.GaussianPulse(g)
		initial := u0.MaxAbs()

		u := advance(s, u0.Clone(), 500)

		Expect(divergedOrHuge(u, initial)).To(BeTrue())
	})
})

var _ = Describe("FTCS instability", func() {
	// FTCS diverging is a documented property of the scheme, not a
	// bug; these specs guard against anyone accidentally "fixing" it.
	It("diverges for the advection equation", func() {
		n := 128
		dx := 1.0 / float64(n)
		s := schemes.NewAdvectionFTCS(1.0, dx, dx)

		g, _ := grid.New(n, 1.0)
		u0 := grid.GaussianPulse(g)

		u := advance(s, u0.Clone(), 500)

		Expect(divergedOrHuge(u, u0.MaxAbs())).To(BeTrue())
	})

	It("diverges for the Burgers equation", func() {
		g, _ := grid.New(500, 1.0)
		u0 := grid.Sine(g)
		dt := g.Dx / u0.MaxAbs()
		s := schemes.NewBurgersFTCS(g.Dx, dt, schemes.DefaultViscosity)

		u := advance(s, u0.Clone(), 2000)

		Expect(divergedOrHuge(u, u0.MaxAbs())).To(BeTrue())
	})
})

var _ = Describe("Godunov shock capture", func() {
	It("matches the end-to-end scenario bounds after one step", func() {
		g, err := grid.New(500, 1.0)
		Expect(err).NotTo(HaveOccurred())

		u0 := grid.Sine(g)
		initialMax := u0.MaxAbs()
		dt := 1.0 * g.Dx / initialMax
		s := schemes.NewBurgersGodunov(g.Dx, dt, schemes.DefaultViscosity)

		u := u0.Clone()
		next := make(pde.Field, len(u))
		s.Step(u, next)

		Expect(next.IsValid()).To(BeTrue())
		Expect(next.MaxAbs()).To(BeNumerically("<=", initialMax+0.05))

		ref := math.Max(1, math.Abs(u0.Sum()))
		Expect(math.Abs(next.Sum()-u0.Sum()) / ref).To(BeNumerically("<", 1e-9))
	})
})
