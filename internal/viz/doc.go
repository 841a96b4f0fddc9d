// Package viz provides terminal-based visualization for field
// simulations.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: interactive field animation with play/pause and speed control
//   - [Canvas]: Braille-based pixel canvas used for curve rendering
//
// The view is pull-driven: it advances the simulation and then reads a
// field snapshot once per frame, never concurrently with a step.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Rebuild from the initial condition
//	+/-   - Steps advanced per frame
//	?     - Toggle help
package viz
