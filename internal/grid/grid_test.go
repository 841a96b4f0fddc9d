package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		l    float64
		want error
	}{
		{"zero points", 0, 1.0, pde.ErrGridSize},
		{"negative points", -5, 1.0, pde.ErrGridSize},
		{"zero length", 100, 0, pde.ErrDomainLength},
		{"negative length", 100, -1.0, pde.ErrDomainLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.l)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCoords(t *testing.T) {
	g, err := New(4, 2.0)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if g.Dx != 0.5 {
		t.Errorf("expected dx 0.5, got %f", g.Dx)
	}

	x := g.Coords()
	want := []float64{0, 0.5, 1.0, 1.5}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d]: expected %f, got %f", i, want[i], x[i])
		}
	}
}

func TestWrap(t *testing.T) {
	g, _ := New(10, 1.0)

	tests := []struct {
		in, want int
	}{
		{0, 0},
		{9, 9},
		{10, 0},
		{-1, 9},
		{-10, 0},
		{21, 1},
	}

	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestSineWaveform(t *testing.T) {
	g, _ := New(100, 1.0)
	u := Sine(g)

	if len(u) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(u))
	}

	// u(0) = sin(0) + 0.5 sin(0) = 0
	if math.Abs(u[0]) > 1e-12 {
		t.Errorf("expected u(0)=0, got %g", u[0])
	}

	// u(0.25) = sin(π/2) + 0.5 sin(π/4)
	want := 1.0 + 0.5*math.Sin(math.Pi/4)
	if math.Abs(u[25]-want) > 1e-12 {
		t.Errorf("expected u(0.25)=%f, got %f", want, u[25])
	}
}

func TestStepWaveform(t *testing.T) {
	g, _ := New(100, 1.0)
	u := Step(g)

	for i, v := range u {
		x := float64(i) * g.Dx
		want := 0.0
		if x > 0.25 && x < 0.75 {
			want = 1.0
		}
		if v != want {
			t.Errorf("u(%f): expected %f, got %f", x, want, v)
		}
	}
}

func TestGaussianPulse(t *testing.T) {
	g, _ := New(200, 1.0)
	u := GaussianPulse(g)

	// At the center the envelope and carrier both peak.
	if math.Abs(u[100]-1.0) > 1e-12 {
		t.Errorf("expected u(L/2)=1, got %f", u[100])
	}

	// Far from the center the envelope kills the pulse.
	if math.Abs(u[0]) > 1e-5 {
		t.Errorf("expected u(0)~0, got %g", u[0])
	}
	for _, v := range u {
		if math.Abs(v) > 1.0+1e-12 {
			t.Errorf("pulse exceeds unit amplitude: %f", v)
		}
	}
}

func TestStepPulse(t *testing.T) {
	g, _ := New(100, 1.0)
	u := StepPulse(g)

	count := 0
	for i, v := range u {
		x := float64(i) * g.Dx
		want := 0.0
		if math.Abs(x-0.5) < 0.1 {
			want = 1.0
		}
		if v != want {
			t.Errorf("u(%f): expected %f, got %f", x, want, v)
		}
		if v == 1.0 {
			count++
		}
	}
	if count == 0 {
		t.Error("step pulse is empty")
	}
}

func TestWaveformsDeterministic(t *testing.T) {
	g, _ := New(64, 1.0)
	a := GaussianPulse(g)
	b := GaussianPulse(g)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("waveform not deterministic at %d", i)
		}
	}
}
