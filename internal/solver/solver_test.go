package solver

import (
	"errors"
	"math"
	"testing"
)

func TestEccentricAnomaly(t *testing.T) {
	tests := []struct {
		m, e float64
	}{
		{0.5, 0.1},
		{3.0, 0.6},
		{-1.0, 0.967},
		{10.0, 0.85},
	}
	for _, tt := range tests {
		ea, err := EccentricAnomaly(tt.m, tt.e)
		if err != nil {
			t.Fatalf("EccentricAnomaly(%v, %v): %v", tt.m, tt.e, err)
		}
		m := math.Mod(tt.m, 2*math.Pi)
		if m < 0 {
			m += 2 * math.Pi
		}
		if r := ea - tt.e*math.Sin(ea) - m; math.Abs(r) > 1e-5 {
			t.Errorf("M=%v e=%v: residual %v", tt.m, tt.e, r)
		}
	}
}

func TestEccentricAnomalyDoesNotConverge(t *testing.T) {
	if _, err := EccentricAnomaly(math.NaN(), 0.5); !errors.Is(err, ErrDidNotConverge) {
		t.Errorf("err = %v, want ErrDidNotConverge", err)
	}
}

func TestTrueAnomalyCircular(t *testing.T) {
	nu, err := TrueAnomaly(1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(nu-1.0) > 1e-6 {
		t.Errorf("TrueAnomaly(1, 0) = %v, want 1", nu)
	}
}

func TestSolveCubic(t *testing.T) {
	for _, w := range []float64{-5, 0, 0.3, 12, 250} {
		s, err := SolveCubic(w)
		if err != nil {
			t.Fatalf("SolveCubic(%v): %v", w, err)
		}
		if r := s*s*s + 3*s - w; math.Abs(r) > 1e-5 {
			t.Errorf("SolveCubic(%v) = %v, residual %v", w, s, r)
		}
	}
}

func TestFindAltitudeEvent(t *testing.T) {
	// A body that rises at 6h and sets at 18h, peaking at 10°.
	alt := func(h float64) float64 {
		return 10 * math.Sin(2*math.Pi*(h-6)/24)
	}
	const tol = 1.0 / 3600.0

	up := FindAltitudeEvent(alt, 0, 24, 0, CrossingUp, 97, tol)
	if !up.OK || math.Abs(up.Hours-6) > 2*tol {
		t.Errorf("rise = %+v, want 6h", up)
	}
	down := FindAltitudeEvent(alt, 0, 24, 0, CrossingDown, 97, tol)
	if !down.OK || math.Abs(down.Hours-18) > 2*tol {
		t.Errorf("set = %+v, want 18h", down)
	}

	if r := FindAltitudeEvent(alt, 0, 24, 20, CrossingUp, 97, tol); r.OK {
		t.Errorf("crossing above the peak reported: %+v", r)
	}
	if r := FindAltitudeEvent(alt, 5, 5, 0, CrossingUp, 97, tol); r.OK {
		t.Errorf("empty interval reported a crossing: %+v", r)
	}
}
