package practicalastro

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/refdata"
	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Binaries lists the visual binary stars known to the reference table.
func Binaries() []string {
	return refdata.Binaries().Names()
}

// BinaryStarOrbit returns the position angle (degrees, 1 place) and
// separation (arcseconds, 2 places) of the companion of the named binary
// on Greenwich date gd.
func BinaryStarOrbit(gd Date, name string) (pa, sep float64, err error) {
	b, err := refdata.Binaries().Lookup(name)
	if err != nil {
		return 0, 0, err
	}

	g := gd.internal()
	years := float64(g.Year) + (g.JD()-timeutil.CivilToJD(0, 1, g.Year))/365.242191 - b.Epoch
	m := 360.0 * years / b.Period
	m = timeutil.Deg2Rad(m - 360.0*math.Floor(m/360.0))

	nu, err := solver.TrueAnomaly(m, b.Eccentricity)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "binary %q", name)
	}
	ea, err := solver.EccentricAnomaly(m, b.Eccentricity)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "binary %q", name)
	}
	r := (1.0 - b.Eccentricity*math.Cos(ea)) * b.Axis

	// Angle from the node in the orbit plane, projected onto the sky.
	u := nu + timeutil.Deg2Rad(b.Periastron)
	a := timeutil.Degrees(math.Atan2(math.Sin(u)*timeutil.CosD(b.Inclination), math.Cos(u)))
	theta := a + b.NodeAngle
	theta -= 360.0 * math.Floor(theta/360.0)
	rho := r * math.Cos(u) / timeutil.CosD(theta-b.NodeAngle)

	return round(theta, 1), round(rho, 2), nil
}
