package solver

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// MaxIterations caps the Newton and fixed-point loops below. Realistic
// inputs converge in well under ten passes.
const MaxIterations = 100

// Tolerance is the residual at which an iteration is considered converged.
const Tolerance = 0.000001

// ErrDidNotConverge is returned when an iteration exceeds MaxIterations.
var ErrDidNotConverge = errors.New("iteration did not converge")

// EccentricAnomaly solves Kepler's equation E - e sin E = M for E (radians).
// M is wrapped into [0, 2π) first and the iteration starts from E = M.
func EccentricAnomaly(am, ec float64) (float64, error) {
	m := timeutil.Unwind(am)
	ae := m

	for i := 0; i < MaxIterations; i++ {
		d := ae - ec*math.Sin(ae) - m
		if math.Abs(d) < Tolerance {
			return ae, nil
		}
		ae -= d / (1.0 - ec*math.Cos(ae))
	}
	return ae, errors.Wrapf(ErrDidNotConverge, "kepler (M=%g, e=%g)", am, ec)
}

// TrueAnomaly returns the true anomaly (radians) for mean anomaly am and
// eccentricity ec.
func TrueAnomaly(am, ec float64) (float64, error) {
	ae, err := EccentricAnomaly(am, ec)
	if err != nil {
		return 0, err
	}
	a := math.Sqrt((1.0+ec)/(1.0-ec)) * math.Tan(ae/2.0)
	return 2.0 * math.Atan(a), nil
}

// SolveCubic solves s³ + 3s = w (Barker's equation) for s.
func SolveCubic(w float64) (float64, error) {
	s := w / 3.0

	for i := 0; i < MaxIterations; i++ {
		s2 := s * s
		d := (s2+3.0)*s - w
		if math.Abs(d) < Tolerance {
			return s, nil
		}
		s = (2.0*s*s2 + w) / (3.0 * (s2 + 1.0))
	}
	return s, errors.Wrapf(ErrDidNotConverge, "barker cubic (w=%g)", w)
}
