// Package comet computes geocentric positions of comets on elliptical and
// parabolic orbits.
package comet

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// gaussK is the Gaussian gravitational constant scaled for Barker's
// equation with time in days: k·3/√2 with k = 0.01720209895.
const gaussK = 0.0364911624

// Elliptical are the elements of a periodic comet. Angles are in degrees.
type Elliptical struct {
	Epoch        float64 // epoch of perihelion, fractional year
	Perihelion   float64 // longitude of perihelion
	Node         float64
	Period       float64 // years
	Axis         float64 // AU
	Eccentricity float64
	Inclination  float64
}

// Parabolic are the elements of a comet on a parabolic orbit.
type Parabolic struct {
	PerihelionDate     timeutil.Date
	ArgPerihelion      float64 // degrees
	Node               float64 // degrees
	PerihelionDistance float64 // AU
	Inclination        float64 // degrees
}

// Position is a geocentric ecliptic position.
type Position struct {
	Longitude float64 // degrees
	Latitude  float64 // degrees
	Distance  float64 // from Earth, AU
}

// EllipticalPosition returns the position at lt of a comet with elements e.
func EllipticalPosition(lt timeutil.LocalTime, e Elliptical) (Position, error) {
	g := lt.GreenwichDate()
	years := (g.JD()-timeutil.CivilToJD(0, 1, g.Year))/365.242191 + float64(g.Year) - e.Epoch

	mc := 360.0 * years / e.Period
	mc = timeutil.Deg2Rad(mc - 360.0*math.Floor(mc/360.0))

	at, err := solver.TrueAnomaly(mc, e.Eccentricity)
	if err != nil {
		return Position{}, errors.Wrap(err, "comet: elliptical orbit")
	}
	nu := timeutil.Degrees(at)

	lc := nu + e.Perihelion
	r := e.Axis * (1.0 - e.Eccentricity*e.Eccentricity) / (1.0 + e.Eccentricity*timeutil.CosD(nu))

	ln := timeutil.Deg2Rad(lc - e.Node)
	inc := timeutil.Deg2Rad(e.Inclination)
	psi := math.Asin(math.Sin(ln) * math.Sin(inc))
	ld := timeutil.Degrees(math.Atan2(math.Sin(ln)*math.Cos(inc), math.Cos(ln))) + e.Node
	rd := r * math.Cos(psi)

	le := sun.Longitude(lt) + 180.0
	re := sun.Distance(lt)

	x := timeutil.Deg2Rad(le - ld)
	var lon float64
	if rd < re {
		a := math.Atan2(rd*math.Sin(x), re-rd*math.Cos(x))
		lon = 180.0 + le + timeutil.Degrees(a)
	} else {
		a := math.Atan2(re*math.Sin(-x), rd-re*math.Cos(x))
		lon = timeutil.Degrees(a) + ld
	}
	lat := timeutil.Degrees(math.Atan(rd * math.Tan(psi) * timeutil.SinD(lon-ld) / (re * math.Sin(-x))))

	dist := math.Sqrt(re*re + r*r - 2.0*re*r*timeutil.CosD(lc-le)*math.Cos(psi))

	return Position{
		Longitude: lon - 360.0*math.Floor(lon/360.0),
		Latitude:  lat,
		Distance:  dist,
	}, nil
}

// ParabolicPosition returns the position at lt of a comet with elements p.
// UT enters the time since perihelion divided by 365.242191 rather than 24,
// so results within one Greenwich day differ by under 0.07 days.
func ParabolicPosition(lt timeutil.LocalTime, p Parabolic) (Position, error) {
	g := lt.GreenwichDate()
	tpe := lt.UT()/365.242191 + g.JD() - p.PerihelionDate.JD()
	lg := timeutil.Deg2Rad(sun.Longitude(lt) + 180.0)
	re := sun.Distance(lt)
	q := p.PerihelionDistance

	s, err := solver.SolveCubic(gaussK * tpe / (q * math.Sqrt(q)))
	if err != nil {
		return Position{}, errors.Wrap(err, "comet: parabolic orbit")
	}

	nu := 2.0 * math.Atan(s)
	r := q * (1.0 + s*s)
	l := nu + timeutil.Deg2Rad(p.ArgPerihelion)
	node := timeutil.Deg2Rad(p.Node)
	inc := timeutil.Deg2Rad(p.Inclination)

	s2 := math.Sin(l) * math.Sin(inc)
	ps := math.Asin(s2)
	lc := math.Atan2(math.Sin(l)*math.Cos(inc), math.Cos(l)) + node
	c2 := math.Cos(ps)
	rd := r * c2
	ll := lc - lg
	c3 := math.Cos(ll)
	s3 := math.Sin(ll)

	dist := math.Sqrt(re*re + r*r - 2.0*re*r*math.Cos(ps)*math.Cos(l+node-lg))

	var ep float64
	if rd < re {
		ep = math.Atan(-rd*s3/(re-rd*c3)) + lg + 3.141592654
	} else {
		ep = math.Atan(re*s3/(rd-re*c3)) + lc
	}
	ep = timeutil.Unwind(ep)
	bp := math.Atan(rd * s2 * math.Sin(ep-lc) / (c2 * re * s3))

	return Position{
		Longitude: timeutil.Degrees(ep),
		Latitude:  timeutil.Degrees(bp),
		Distance:  dist,
	}, nil
}
