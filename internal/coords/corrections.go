package coords

import (
	"math"

	"github.com/pkg/errors"

	"github.com/thurmanmarka/practicalastro/internal/solver"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Kind says whether the coordinates handed to a correction are true
// (geometric, geocentric) or apparent (as observed).
type Kind int

const (
	True Kind = iota
	Apparent
)

// -----------------------------
// Refraction
// -----------------------------

// Refract corrects altitude alt (degrees) for atmospheric refraction at
// pressure pr (millibars) and temperature tr (°C). For True input the
// apparent altitude is found by fixed-point iteration; for Apparent input
// the refraction is removed directly. Altitudes below about -5° return 0.
func Refract(alt float64, kind Kind, pr, tr float64) (float64, error) {
	y := timeutil.Deg2Rad(alt)

	if kind == Apparent {
		rf := refraction(pr, tr, y, 1.0)
		if y < -0.087 {
			return 0, nil
		}
		return timeutil.Degrees(y + rf), nil
	}

	var r1 float64
	for i := 0; i < solver.MaxIterations; i++ {
		yy := y + r1
		rf := refraction(pr, tr, yy, -1.0)
		if yy < -0.087 {
			return 0, nil
		}
		if rf == 0 || math.Abs(rf-r1) < solver.Tolerance {
			return timeutil.Degrees(y + rf), nil
		}
		r1 = rf
	}
	return 0, errors.Wrapf(solver.ErrDidNotConverge, "refraction (alt=%g)", alt)
}

// refraction is the refraction angle (radians) at altitude y (radians).
// Above 15° the cotangent law is used, below it an empirical fit.
func refraction(pr, tr, y, d float64) float64 {
	if y < 0.2617994 {
		if y < -0.087 {
			return 0
		}
		yd := timeutil.Degrees(y)
		a := ((0.00002*yd+0.0196)*yd + 0.1594) * pr
		b := (273.0 + tr) * ((0.0845*yd+0.505)*yd + 1.0)
		return timeutil.Deg2Rad(-(a / b) * d)
	}
	return -d * 0.00007888888 * pr / ((273.0 + tr) * math.Tan(y))
}

// -----------------------------
// Geocentric parallax
// -----------------------------

type observer struct {
	rs, rc, rp float64
}

// newObserver builds the geocentric observer terms for latitude lat
// (degrees), height ht (metres) and equatorial horizontal parallax hp
// (degrees).
func newObserver(lat, ht, hp float64) observer {
	a := timeutil.Deg2Rad(lat)
	c1 := math.Cos(a)
	s1 := math.Sin(a)

	u := math.Atan(0.996647 * s1 / c1)
	b := ht / 6378160.0

	return observer{
		rs: (0.996647 * math.Sin(u)) + (b * s1),
		rc: math.Cos(u) + (b * c1),
		rp: 1.0 / timeutil.SinD(hp),
	}
}

// shift maps geocentric hour angle x and declination y (radians) to
// topocentric values.
func (o observer) shift(x, y float64) (p, q float64) {
	cx := math.Cos(x)
	sy := math.Sin(y)
	cy := math.Cos(y)

	dx := math.Atan((o.rc * math.Sin(x)) / ((o.rp * cy) - (o.rc * cx)))
	p = x + dx
	cp := math.Cos(p)
	p = timeutil.Unwind(p)
	q = math.Atan(cp * (o.rp*sy - o.rs) / (o.rp*cy*cx - o.rc))
	return p, q
}

// Parallax corrects hour angle ha (hours) and declination dec (degrees) for
// geocentric parallax as seen from latitude lat at height ht metres, for a
// body of horizontal parallax hp. True input is shifted to the observer
// directly; Apparent input is shifted back by iterating until both
// corrections settle.
func Parallax(ha, dec float64, kind Kind, lat, ht, hp float64) (float64, float64, error) {
	o := newObserver(lat, ht, hp)
	x := timeutil.Deg2Rad(ha * 15.0)
	y := timeutil.Deg2Rad(dec)

	if kind == True {
		p, q := o.shift(x, y)
		return timeutil.Degrees(p) / 15.0, timeutil.Degrees(q), nil
	}

	var p1, q1 float64
	xl, yl := x, y
	for i := 0; i < solver.MaxIterations; i++ {
		p, q := o.shift(xl, yl)
		p2 := p - xl
		q2 := q - yl

		if math.Abs(p2-p1) < solver.Tolerance && math.Abs(q2-q1) < solver.Tolerance {
			return timeutil.Degrees(x-p2) / 15.0, timeutil.Degrees(y - q2), nil
		}
		xl = x - p2
		yl = y - q2
		p1, q1 = p2, q2
	}
	return 0, 0, errors.Wrapf(solver.ErrDidNotConverge, "parallax (ha=%g, dec=%g)", ha, dec)
}

// -----------------------------
// Precession and aberration
// -----------------------------

// Precess moves right ascension (hours) and declination (degrees) from the
// epoch e1 to the epoch e2 with the low-precision rate model.
func Precess(ra, dec float64, e1, e2 timeutil.Date) (float64, float64) {
	raRad := timeutil.Deg2Rad(ra * 15.0)
	decRad := timeutil.Deg2Rad(dec)

	t := centuries1900(e1)
	m := 3.07234 + (0.00186 * t)
	n := 20.0468 - (0.0085 * t)
	years := (e2.JD() - e1.JD()) / 365.25

	s1 := ((m + (n * math.Sin(raRad) * math.Tan(decRad) / 15.0)) * years) / 3600.0
	s2 := (n * math.Cos(raRad) * years) / 3600.0
	return ra + s1, dec + s2
}

// Aberration returns the apparent ecliptic longitude and latitude (degrees)
// of a body at true lon/lat when the Sun is at ecliptic longitude sunLong.
func Aberration(lon, lat, sunLong float64) (float64, float64) {
	dl := -20.5 * timeutil.CosD(sunLong-lon) / timeutil.CosD(lat)
	db := -20.5 * timeutil.SinD(sunLong-lon) * timeutil.SinD(lat)
	return lon + (dl / 3600.0), lat + (db / 3600.0)
}
