package pde

import "errors"

// Configuration errors. All are detected when a simulation is built,
// never during stepping; a failed build produces no partial simulation.
var (
	// ErrUnknownScheme indicates a scheme name absent from the registry.
	ErrUnknownScheme = errors.New("pde: unknown scheme")

	// ErrUnknownWaveform indicates an initial-condition name absent from the registry.
	ErrUnknownWaveform = errors.New("pde: unknown waveform")

	// ErrUnknownEquation indicates an equation name other than burgers or advection.
	ErrUnknownEquation = errors.New("pde: unknown equation")

	// ErrGridSize indicates a non-positive grid point count.
	ErrGridSize = errors.New("pde: grid size must be positive")

	// ErrDomainLength indicates a non-positive domain length.
	ErrDomainLength = errors.New("pde: domain length must be positive")

	// ErrWaveSpeed indicates a non-positive advection wave speed.
	ErrWaveSpeed = errors.New("pde: wave speed must be positive")

	// ErrCFLRatio indicates a non-positive CFL ratio.
	ErrCFLRatio = errors.New("pde: CFL ratio must be positive")

	// ErrFlatField indicates a Burgers initial field with max|u| = 0,
	// which leaves the CFL timestep undefined.
	ErrFlatField = errors.New("pde: initial field is flat, CFL timestep undefined")

	// ErrTimestep indicates a non-positive timestep.
	ErrTimestep = errors.New("pde: timestep must be positive")

	// ErrFieldSize indicates an initial field whose length differs from the grid.
	ErrFieldSize = errors.New("pde: field length does not match grid")
)
