// Package analysis provides spectral diagnostics for simulated fields.
//
// The power spectrum of a field makes the character of a scheme's
// numerical dissipation visible: Lax damps high wavenumbers quickly,
// Lax-Wendroff preserves them, and an FTCS blow-up shows up as energy
// piling into the grid-scale mode.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// PowerSpectrum returns the one-sided power spectrum of the field,
// zero-padded to the next power of two. The zero mode is included at
// index 0.
func PowerSpectrum(u []float64) []float64 {
	if len(u) == 0 {
		return nil
	}

	n := 1
	for n < len(u) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, u)

	coeffs := fft.FFTReal(padded)

	ps := make([]float64, n/2+1)
	for i := range ps {
		mag := cmplx.Abs(coeffs[i])
		ps[i] = mag * mag / float64(n)
	}
	return ps
}

// DominantMode returns the wavenumber index carrying the most power,
// ignoring the zero mode, and that mode's share of the total power.
func DominantMode(ps []float64) (int, float64) {
	if len(ps) < 2 {
		return 0, 0
	}
	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	total := floats.Sum(ps)
	if total == 0 {
		return maxIdx, 0
	}
	return maxIdx, ps[maxIdx] / total
}
