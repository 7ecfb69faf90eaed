// Package eclipse predicts lunar and solar eclipses near a date and
// computes their contact times from a linear model of the Moon's motion
// through the shadow over two hours around syzygy.
package eclipse

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Likelihood grades how close the Moon is to a node at syzygy.
type Likelihood int

const (
	None Likelihood = iota
	Possible
	Certain
)

func (l Likelihood) String() string {
	switch l {
	case Certain:
		return "certain"
	case Possible:
		return "possible"
	default:
		return "none"
	}
}

// Argument of latitude limits (radians from the node) at syzygy.
const (
	certainLimit  = 0.242600766
	possibleLimit = 0.37
)

const piApprox = 3.141592654

const tau = 2.0 * math.Pi

// grade maps the Moon's argument of latitude f (radians) at syzygy to a
// likelihood.
func grade(f float64) Likelihood {
	df := math.Abs(f - piApprox*timeutil.Lint(f/piApprox))
	if df > possibleLimit {
		df = piApprox - df
	}
	switch {
	case df < certainLimit:
		return Certain
	case df <= possibleLimit:
		return Possible
	default:
		return None
	}
}

// LunarOccurrence reports whether the full moon of the lunation containing
// local date d can eclipse.
func LunarOccurrence(d timeutil.Date, dst, zone int) Likelihood {
	k := moon.Lunation(d, dst, zone) + 0.5
	_, _, f := moon.PhaseTime(k, k/1236.85)
	return grade(f)
}

// SolarOccurrence reports whether the new moon of the lunation containing
// local date d can eclipse.
func SolarOccurrence(d timeutil.Date, dst, zone int) Likelihood {
	k := moon.Lunation(d, dst, zone)
	_, _, f := moon.PhaseTime(k, k/1236.85)
	return grade(f)
}

// Contact is a UT time (decimal hours) that may not happen.
type Contact struct {
	UT float64
	OK bool
}

// EventDate returns the local date of the syzygy at Julian Date jd.
//
// The UT passed to the local conversion is the fraction of the Greenwich
// day, not hours; the date only moves when the zone offset alone crosses a
// day boundary.
func EventDate(jd float64, dst, zone int) timeutil.Date {
	day, month, year := timeutil.JDToCivil(jd)
	whole := math.Floor(day)
	_, local := timeutil.UTToLocal(day-whole, dst, zone, timeutil.Date{Day: whole, Month: month, Year: year})
	return local
}

// syzygy is the Greenwich date and UT (hours) of a new or full moon.
type syzygy struct {
	g  timeutil.Date
	ut float64
}

func newSyzygy(jd float64) syzygy {
	day, month, year := timeutil.JDToCivil(jd)
	whole := math.Floor(day)
	return syzygy{
		g:  timeutil.Date{Day: whole, Month: month, Year: year},
		ut: (day - whole) * 24.0,
	}
}

// sample is the Sun's longitude and the Moon's place at one instant, in
// radians.
type sample struct {
	sunLon  float64
	moonLon float64
	moonLat float64
	moonHP  float64
}

func (s syzygy) at(ut float64) sample {
	lt := timeutil.At(ut, 0, 0, s.g)
	lon, lat, hp := moon.Position(lt)
	return sample{
		sunLon:  timeutil.Deg2Rad(sun.Longitude(lt)),
		moonLon: timeutil.Deg2Rad(lon),
		moonLat: timeutil.Deg2Rad(lat),
		moonHP:  timeutil.Deg2Rad(hp),
	}
}

// geometry is the Moon's path relative to the shadow (or the Sun) as a
// straight line in units of the hourly relative motion, centred on x0, the
// time the Moon crosses the ecliptic.
type geometry struct {
	x0 float64 // UT of the node crossing
	z1 float64 // UT of closest approach
	zh float64 // time offset of the shadow from x0
	z2 float64
	pj float64 // closest approach, in the same units
	rm float64 // Moon's radius
	rn float64 // Sun's radius
	ru float64 // umbra radius
	rp float64 // penumbra radius
}

// halfWidth returns half the duration (hours) of an overlap of combined
// radius r with the Moon's path, and whether the overlap happens.
func (g geometry) halfWidth(r float64) (float64, bool) {
	dd := g.z1 - g.x0
	dd = dd*dd - ((g.z2 - r*r) * dd / g.zh)
	if dd < 0 {
		return 0, false
	}
	return math.Sqrt(dd), true
}

// begin and end return the contact times for radius r, wrapped into 0-24 h.
func (g geometry) begin(r float64) Contact {
	zd, ok := g.halfWidth(r)
	if !ok {
		return Contact{}
	}
	z := g.z1 - zd
	if z < 0 {
		z += 24.0
	}
	return Contact{UT: z, OK: true}
}

func (g geometry) end(r float64) Contact {
	zd, ok := g.halfWidth(r)
	if !ok {
		return Contact{}
	}
	z := g.z1 + zd
	return Contact{UT: z - timeutil.Lint(z/24.0)*24.0, OK: true}
}

// path fits the Moon's motion between the samples y (one hour before
// syzygy at xh) and z (one hour after).
type path struct {
	xh     float64
	y, z   sample
	sb     float64 // Sun's motion over the two hours
	dm     float64 // Moon's motion over the two hours
	lj     float64 // relative motion per hour
	x0, mr float64
}

func newPath(s syzygy, y, z sample) path {
	sb := z.sunLon - y.sunLon
	if sb < 0 {
		sb += tau
	}
	p := path{xh: s.ut, y: y, z: z, sb: sb}
	p.x0 = p.xh + 1.0 - (2.0 * z.moonLat / (z.moonLat - y.moonLat))

	p.dm = z.moonLon - y.moonLon
	if p.dm < 0 {
		p.dm += tau
	}
	p.lj = (p.dm - p.sb) / 2.0
	p.mr = y.moonLon + (p.dm * (p.x0 - p.xh + 1.0) / 2.0)
	return p
}

// geometry places the path against a shadow or disc centred at longitude
// sr, for the Sun at radius vector rr. q is subtracted from both lunar
// latitudes.
func (p path) geometry(sr, rr, q float64) geometry {
	by := p.y.moonLat - q
	bz := p.z.moonLat - q
	lj := p.lj

	zh := (sr - p.mr) / lj
	tc := p.x0 + zh
	sh := (((bz - by) * (tc - p.xh - 1.0) / 2.0) + bz) / lj
	s2 := sh * sh
	z2 := zh * zh
	ps := 0.00004263 / (rr * lj)
	h0 := (p.y.moonHP + p.z.moonHP) / (2.0 * lj)
	rn := 0.00465242 / (lj * rr)
	hd := h0 * 0.99834

	return geometry{
		x0: p.x0,
		z1: (zh * z2 / (z2 + s2)) + p.x0,
		zh: zh,
		z2: z2,
		pj: math.Abs(sh * zh / math.Sqrt(s2+z2)),
		rm: 0.272446 * h0,
		rn: rn,
		ru: (hd - rn + ps) * 1.02,
		rp: (hd + rn + ps) * 1.02,
	}
}

// sunAt returns the Sun's apparent longitude (radians, with nutation and
// aberration) and radius vector at ut on the syzygy's Greenwich date.
func (s syzygy) sunAt(ut float64) (sr, rr float64) {
	lt := timeutil.At(ut, 0, 0, s.g)
	rr = sun.Distance(lt)
	sr = timeutil.Deg2Rad(sun.Longitude(lt))
	sr += timeutil.Deg2Rad(coords.NutationLongitude(s.g) - 0.00569)
	return sr, rr
}

// lightTime is the Sun's light time in hours, subtracted from x0 before the
// Sun is evaluated.
const lightTime = 0.13851852
