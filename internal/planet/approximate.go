package planet

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// epoch2010 is the Julian Date of 2010 January 0.0.
var epoch2010 = timeutil.CivilToJD(0, 1, 2010)

// Elements are fixed orbital elements at epoch 2010.0 for the approximate
// model. Angles are in degrees.
type Elements struct {
	Period       float64 // tropical years
	Longitude    float64 // mean longitude at epoch
	Perihelion   float64 // longitude of perihelion
	Eccentricity float64
	Axis         float64 // AU
	Inclination  float64
	Node         float64
}

// heliocentric returns the longitude (degrees, 0-360) and radius vector of a
// body on an unperturbed orbit d days after epoch, using the equation of the
// centre to first order in e.
func (e Elements) heliocentric(d float64) (l, r float64) {
	n := 360.0 * d / (365.242191 * e.Period)
	n -= 360.0 * math.Floor(n/360.0)
	m := n + e.Longitude - e.Perihelion

	l = n + 360.0*e.Eccentricity*timeutil.SinD(m)/math.Pi + e.Longitude
	l -= 360.0 * math.Floor(l/360.0)

	v := l - e.Perihelion
	r = e.Axis * (1.0 - e.Eccentricity*e.Eccentricity) / (1.0 + e.Eccentricity*timeutil.CosD(v))
	return l, r
}

// Approximate returns the geocentric ecliptic longitude and latitude
// (degrees) of a planet with elements p at lt, with Earth on elements
// earth.
func Approximate(lt timeutil.LocalTime, p, earth Elements) (lon, lat float64) {
	g := lt.GreenwichDate()
	d := timeutil.CivilToJD(g.Day+lt.UT()/24.0, g.Month, g.Year) - epoch2010

	lp, r := p.heliocentric(d)
	le, re := earth.heliocentric(d)

	ln := timeutil.Deg2Rad(lp - p.Node)
	inc := timeutil.Deg2Rad(p.Inclination)
	psi := math.Asin(math.Sin(ln) * math.Sin(inc))
	ld := timeutil.Degrees(math.Atan2(math.Sin(ln)*math.Cos(inc), math.Cos(ln))) + p.Node
	rd := r * math.Cos(psi)

	x := timeutil.Deg2Rad(le - ld)
	if rd < 1.0 {
		a := math.Atan2(rd*math.Sin(x), re-rd*math.Cos(x))
		lon = 180.0 + le + timeutil.Degrees(a)
	} else {
		a := math.Atan2(re*math.Sin(-x), rd-re*math.Cos(x))
		lon = timeutil.Degrees(a) + ld
	}
	lon -= 360.0 * math.Floor(lon/360.0)

	lat = timeutil.Degrees(math.Atan(rd * math.Tan(psi) * timeutil.SinD(lon-ld) / (re * math.Sin(-x))))
	return lon, lat
}
