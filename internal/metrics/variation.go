package metrics

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// TotalVariation tracks the periodic total variation Σ|u[i+1]-u[i]| of
// the field. Monotone schemes never increase it; oscillatory
// instabilities show up as growth.
type TotalVariation struct {
	name    string
	initial float64
	final   float64
	samples int
}

func NewTotalVariation() *TotalVariation {
	return &TotalVariation{name: "total_variation_ratio"}
}

func (v *TotalVariation) Name() string { return v.name }

func variation(u pde.Field) float64 {
	n := len(u)
	if n == 0 {
		return 0
	}
	tv := 0.0
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		tv += math.Abs(u[ip] - u[i])
	}
	return tv
}

func (v *TotalVariation) Observe(u pde.Field, t float64) {
	tv := variation(u)
	if v.samples == 0 {
		v.initial = tv
	}
	v.samples++
	v.final = tv
}

// Value is the final-to-initial variation ratio; 1 means the scheme
// neither sharpened nor smeared the profile.
func (v *TotalVariation) Value() float64 {
	if v.initial == 0 {
		return 0
	}
	return v.final / v.initial
}

func (v *TotalVariation) Reset() {
	v.initial = 0
	v.final = 0
	v.samples = 0
}
