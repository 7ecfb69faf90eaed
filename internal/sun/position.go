package sun

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and
// declination) in degrees. RA is in degrees (0-360).
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// orbit holds the slowly varying elements of the Earth-Sun orbit at an
// instant, measured in Julian centuries since 1900 January 0.5.
type orbit struct {
	t, t2 float64
	l     float64 // mean longitude, degrees
	m1    float64 // mean anomaly, degrees
	ec    float64 // eccentricity
}

func newOrbit(lt timeutil.LocalTime) orbit {
	dj := lt.GreenwichDate().JD() - 2415020.0
	t := (dj / 36525.0) + (lt.UT() / 876600.0)
	t2 := t * t

	return orbit{
		t:  t,
		t2: t2,
		l:  279.69668 + 0.0003025*t2 + cycles(100.0021359*t),
		m1: 358.47583 - (0.00015+0.0000033*t)*t2 + cycles(99.99736042*t),
		ec: 0.01675104 - 0.0000418*t - 0.000000126*t2,
	}
}

func cycles(a float64) float64 {
	return 360.0 * (a - math.Floor(a))
}

// perturbations are the planetary and lunar terms, in radians.
type perturbations struct {
	a1, b1, c1, d1, e1, h1 float64
}

func (o orbit) perturbations() perturbations {
	t := o.t
	return perturbations{
		a1: timeutil.Deg2Rad(153.23 + cycles(62.55209472*t)),
		b1: timeutil.Deg2Rad(216.57 + cycles(125.1041894*t)),
		c1: timeutil.Deg2Rad(312.69 + cycles(91.56766028*t)),
		d1: timeutil.Deg2Rad(350.74 - 0.00144*o.t2 + cycles(1236.853095*t)),
		e1: timeutil.Deg2Rad(231.19 + 20.2*t),
		h1: timeutil.Deg2Rad(353.4 + cycles(183.1353208*t)),
	}
}

// kepler solves for the eccentric and true anomalies. The eccentricity of
// the Earth's orbit is below 0.02, where the capped Newton iteration always
// converges, so the solver error is not propagated.
func (o orbit) kepler() (ae, at float64) {
	am := timeutil.Deg2Rad(o.m1)
	at, _ = solver.TrueAnomaly(am, o.ec)
	ae, _ = solver.EccentricAnomaly(am, o.ec)
	return ae, at
}

// Longitude returns the Sun's geometric ecliptic longitude (degrees) at the
// instant lt.
func Longitude(lt timeutil.LocalTime) float64 {
	o := newOrbit(lt)
	_, at := o.kepler()
	p := o.perturbations()

	d2 := 0.00134*math.Cos(p.a1) + 0.00154*math.Cos(p.b1) + 0.002*math.Cos(p.c1)
	d2 = d2 + 0.00179*math.Sin(p.d1) + 0.00178*math.Sin(p.e1)

	sr := timeutil.Unwind(at + timeutil.Deg2Rad(o.l-o.m1+d2))
	return timeutil.Degrees(sr)
}

// Distance returns the Earth-Sun distance in AU.
func Distance(lt timeutil.LocalTime) float64 {
	o := newOrbit(lt)
	ae, _ := o.kepler()
	p := o.perturbations()

	d3 := (0.00000543*math.Sin(p.a1) + 0.00001575*math.Sin(p.b1)) +
		(0.00001627*math.Sin(p.c1) + 0.00003076*math.Cos(p.d1)) +
		(0.00000927 * math.Sin(p.h1))

	return 1.0000002*(1.0-o.ec*math.Cos(ae)) + d3
}

// AngularDiameter returns the Sun's angular diameter in degrees.
func AngularDiameter(lt timeutil.LocalTime) float64 {
	return 0.533128 / Distance(lt)
}

// TrueAnomaly returns the Sun's true anomaly in degrees.
func TrueAnomaly(lt timeutil.LocalTime) float64 {
	_, at := newOrbit(lt).kepler()
	return timeutil.Degrees(at)
}

// MeanAnomaly returns the Sun's mean anomaly in radians, 0 to 2π. Its
// periodic term advances at the mean-longitude rate; the lunar series
// depend on that value.
func MeanAnomaly(lt timeutil.LocalTime) float64 {
	o := newOrbit(lt)
	m1 := 358.47583 - (0.00015+0.0000033*o.t)*o.t2 + cycles(100.0021359*o.t)
	return timeutil.Unwind(timeutil.Deg2Rad(m1))
}

// centuries1900 is Julian centuries since 1900 January 0.5 at 0h on g.
func centuries1900(g timeutil.Date) float64 {
	return (g.JD() - 2415020.0) / 36525.0
}

// MeanLongitudeAtEpoch is the Sun's mean ecliptic longitude (degrees) at
// the epoch g.
func MeanLongitudeAtEpoch(g timeutil.Date) float64 {
	t := centuries1900(g)
	return timeutil.Normalize360(279.6966778 + 36000.76892*t + 0.0003025*(t*t))
}

// PerigeeLongitude is the longitude of the Sun at perigee (degrees).
func PerigeeLongitude(g timeutil.Date) float64 {
	t := centuries1900(g)
	return timeutil.Normalize360(281.2208444 + 1.719175*t + 0.000452778*(t*t))
}

// Eccentricity of the Earth-Sun orbit at the epoch g.
func Eccentricity(g timeutil.Date) float64 {
	t := centuries1900(g)
	return 0.01675104 - 0.0000418*t - 0.000000126*(t*t)
}

// epoch2010 is the reference epoch of the simple solar model.
var epoch2010 = timeutil.Date{Day: 0, Month: 1, Year: 2010}

// ApproximateLongitude returns the Sun's ecliptic longitude (degrees) from
// a mean motion and a single equation-of-centre term, referred to the
// 2010 January 0.0 epoch.
func ApproximateLongitude(lt timeutil.LocalTime) float64 {
	jd := lt.GreenwichDate().JD() + lt.UT()/24.0
	d := jd - epoch2010.JD()
	n := 360.0 * d / 365.242191

	m := timeutil.Normalize360(n + MeanLongitudeAtEpoch(epoch2010) - PerigeeLongitude(epoch2010))
	ec := 360.0 * Eccentricity(epoch2010) * timeutil.SinD(m) / math.Pi
	return timeutil.Normalize360(n + ec + MeanLongitudeAtEpoch(epoch2010))
}

// ApparentEquatorial converts the ecliptic longitude lon of the Sun at lt
// to right ascension and declination, using the obliquity on the Greenwich
// date of lt.
func ApparentEquatorial(lon float64, lt timeutil.LocalTime) Equatorial {
	ra, dec := coords.EclipticToEquatorial(lon, 0, coords.Obliquity(lt.GreenwichDate()))
	return Equatorial{RA: ra, Dec: dec}
}
