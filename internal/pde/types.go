package pde

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum is the discrete integral of the field up to a factor of dx.
func (f Field) Sum() float64 {
	return floats.Sum(f)
}

func (f Field) MaxAbs() float64 {
	max := 0.0
	for _, v := range f {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Min(f)
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Max(f)
}

// Stepper advances a periodic field by one time step, writing the new
// values into next. Implementations must fully overwrite next and must
// not retain either slice. u and next never alias.
type Stepper interface {
	Step(u, next Field)
}

type Metric interface {
	Name() string
	Observe(u Field, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each completed step, once the buffer swap
// is done. The field slice is only valid until the next Advance call.
type Observer interface {
	OnStep(u Field, t float64)
}

type RunConfig struct {
	Steps         int
	SnapshotEvery int
	ValidateField bool
}

type Result struct {
	Snapshots  []Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Diverged   bool
	Errors     []error
}

type SimError struct {
	Step    int
	Time    float64
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.6f): %s", e.Step, e.Time, e.Message)
}
