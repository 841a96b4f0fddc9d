// Package pde provides core primitives for finite-difference integration
// of one-dimensional PDEs on periodic grids.
//
// The package defines the fundamental interfaces and types shared by the
// simulation engines:
//
//   - [Field]: sampled field values on the grid
//   - [Stepper]: one-step finite-difference scheme (u -> u_next)
//   - [Metric]: per-step scalar observation (conservation, stability, ...)
//   - [Observer]: external consumer notified between steps
//
// # Example
//
//	g, _ := grid.New(500, 1.0)
//	u0 := grid.Sine(g)
//	s, _ := sim.New(g, u0, schemes.NewBurgersGodunov(g.Dx, dt, nu), dt)
//	s.Advance()
//
// # Thread Safety
//
// A simulation owns its buffers exclusively and is not thread-safe.
// Distinct simulations share no storage and may run on separate
// goroutines without coordination.
package pde
