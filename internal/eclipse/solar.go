package eclipse

import (
	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/moon"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Solar are the circumstances of a solar eclipse for one observer.
type Solar struct {
	Likelihood Likelihood
	Date       timeutil.Date // local date of the new moon

	FirstContact Contact
	Maximum      Contact
	LastContact  Contact

	Magnitude    float64
	HasMagnitude bool
}

// Occurs reports whether the discs overlap for the observer.
func (s Solar) Occurs() bool { return s.Maximum.OK }

// topocentric shifts ecliptic longitude x and latitude y (radians) of a body
// with horizontal parallax hp (radians) to the observer at lon/lat at UT tm
// on Greenwich date g, and returns the shifted ecliptic coordinates.
func topocentric(x, y float64, g timeutil.Date, tm, lon, lat, hp float64) (p, q float64) {
	eps := coords.Obliquity(g)
	lt := timeutil.At(tm, 0, 0, g)

	ra, dec := coords.EclipticToEquatorial(timeutil.Degrees(x), timeutil.Degrees(y), eps)
	ha := coords.HourAngle(ra/15.0, lt, lon)

	// The true-to-apparent direction is computed directly.
	pha, pdec, _ := coords.Parallax(ha, dec, coords.True, lat, 0, timeutil.Degrees(hp))
	pra := coords.RightAscension(pha, lt, lon)

	el, eb := coords.EquatorialToEcliptic(pra*15.0, pdec, eps)
	return timeutil.Deg2Rad(el), timeutil.Deg2Rad(eb)
}

func solarGeometry(jd, lon, lat float64) geometry {
	s := newSyzygy(jd)
	y := s.at(s.ut - 1.0)
	z := s.at(s.ut + 1.0)

	y.moonLon, y.moonLat = topocentric(y.moonLon, y.moonLat, s.g, s.ut-1.0, lon, lat, y.moonHP)
	z.moonLon, z.moonLat = topocentric(z.moonLon, z.moonLat, s.g, s.ut+1.0, lon, lat, z.moonHP)
	p := newPath(s, y, z)

	ut := p.x0 - lightTime
	sr, rr := s.sunAt(ut)
	sr, q := topocentric(sr, 0, s.g, ut, lon, lat, 0.00004263452/rr)

	return p.geometry(sr, rr, q)
}

// SolarCircumstances computes the solar eclipse at the new moon of the
// lunation containing local date d, as seen from lon/lat (degrees).
func SolarCircumstances(d timeutil.Date, dst, zone int, lon, lat float64) Solar {
	jd := moon.NewMoon(d, dst, zone)
	out := Solar{
		Likelihood: SolarOccurrence(d, dst, zone),
		Date:       EventDate(jd, dst, zone),
	}
	if out.Likelihood == None {
		return out
	}

	g := solarGeometry(jd, lon, lat)
	r := g.rm + g.rn
	out.FirstContact = g.begin(r)
	out.LastContact = g.end(r)
	if !out.FirstContact.OK {
		return out
	}

	out.Maximum = Contact{UT: g.z1, OK: true}
	out.Magnitude = (g.rm + g.rn - g.pj) / (2.0 * g.rn)
	out.HasMagnitude = true
	return out
}
