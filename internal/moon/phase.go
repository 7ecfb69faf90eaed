package moon

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// jd1900 is the Julian Date of 1900 January 0.5.
const jd1900 = 2415020.0

// Phase returns the illuminated fraction of the Moon's disc at lt, with the
// phase angle corrected for the Moon's and Sun's distances.
func Phase(lt timeutil.LocalTime) float64 {
	lon, lat, _ := Position(lt)

	cd := timeutil.CosD(lon-sun.Longitude(lt)) * timeutil.CosD(lat)
	d := math.Acos(cd)
	sd := math.Sin(d)
	i := 0.1468 * sd * (1.0 - 0.0549*math.Sin(MeanAnomaly(lt)))
	i = i / (1.0 - 0.0167*math.Sin(sun.MeanAnomaly(lt)))
	i = 3.141592654 - d - timeutil.Deg2Rad(i)
	return (1.0 + math.Cos(i)) / 2.0
}

// ApproximatePhase returns the illuminated fraction from the elongation in
// longitude alone.
func ApproximatePhase(lt timeutil.LocalTime) float64 {
	lon, _, _ := Position(lt)
	d := timeutil.Deg2Rad(lon - sun.Longitude(lt))
	return (1.0 - math.Cos(d)) / 2.0
}

// BrightLimbAngle returns the position angle (degrees, -180 to 180) of the
// Moon's bright limb, measured from north through east.
func BrightLimbAngle(lt timeutil.LocalTime) float64 {
	g := lt.GreenwichDate()
	eps := coords.Obliquity(g)
	lon, lat, _ := Position(lt)

	sunRA, sunDec := coords.EclipticToEquatorial(sun.Longitude(lt), 0, eps)
	moonRA, moonDec := coords.EclipticToEquatorial(lon, lat, eps)

	sa := timeutil.Deg2Rad(sunRA)
	sd := timeutil.Deg2Rad(sunDec)
	ma := timeutil.Deg2Rad(moonRA)
	md := timeutil.Deg2Rad(moonDec)

	y := math.Cos(sd) * math.Sin(sa-ma)
	x := math.Cos(md)*math.Sin(sd) - math.Sin(md)*math.Cos(sd)*math.Cos(sa-ma)
	return timeutil.Degrees(math.Atan2(y, x))
}

// Lunation is the lunation number k nearest local noon of date d, counted
// from the first new moon of 1900.
func Lunation(d timeutil.Date, dst, zone int) float64 {
	g := timeutil.At(12, dst, zone, d).GreenwichDate()

	j0 := timeutil.CivilToJD(0, 1, g.Year) - jd1900
	dj := g.JD() - jd1900
	return timeutil.Lint(((float64(g.Year)-1900.0+((dj-j0)/365.0))*12.3685) + 0.5)
}

// NewMoon returns the Julian Date of the new moon of the lunation that
// contains local date d.
func NewMoon(d timeutil.Date, dst, zone int) float64 {
	k := Lunation(d, dst, zone)
	whole, frac, _ := PhaseTime(k, k/1236.85)
	return whole + jd1900 + frac
}

// FullMoon returns the Julian Date of the full moon following the new moon
// of the lunation that contains local date d.
func FullMoon(d timeutil.Date, dst, zone int) float64 {
	k := Lunation(d, dst, zone) + 0.5
	whole, frac, _ := PhaseTime(k, k/1236.85)
	return whole + jd1900 + frac
}

// PhaseTime returns the time of new (whole k) or full (k + 0.5) moon as
// whole and fractional days since 1900 January 0.5, with the Moon's
// argument of latitude f (radians) at that instant. t is in Julian centuries
// since 1900.
func PhaseTime(k, t float64) (whole, frac, f float64) {
	t2 := t * t
	e := 29.53 * k
	c := timeutil.Deg2Rad(166.56 + (132.87-0.009173*t)*t)
	b := 0.00058868*k + (0.0001178-0.000000155*t)*t2
	b = b + 0.00033*math.Sin(c) + 0.75933

	a1 := 359.2242 + 360.0*timeutil.Fract(k/12.36886) - (0.0000333+0.00000347*t)*t2
	a2 := 306.0253 + 360.0*timeutil.Fract(k/0.9330851)
	a2 = a2 + (0.0107306+0.00001236*t)*t2
	f = 21.2964 + 360.0*timeutil.Fract(k/0.9214926) - (0.0016528+0.00000239*t)*t2

	a1 = timeutil.Deg2Rad(timeutil.Normalize360(a1))
	a2 = timeutil.Deg2Rad(timeutil.Normalize360(a2))
	f = timeutil.Deg2Rad(timeutil.Normalize360(f))

	dd := (0.1734-0.000393*t)*math.Sin(a1) + 0.0021*math.Sin(2.0*a1)
	dd = dd - 0.4068*math.Sin(a2) + 0.0161*math.Sin(2.0*a2) - 0.0004*math.Sin(3.0*a2)
	dd = dd + 0.0104*math.Sin(2.0*f) - 0.0051*math.Sin(a1+a2)
	dd = dd - 0.0074*math.Sin(a1-a2) + 0.0004*math.Sin(2.0*f+a1)
	dd = dd - 0.0004*math.Sin(2.0*f-a1) - 0.0006*math.Sin(2.0*f+a2) + 0.001*math.Sin(2.0*f-a2)
	dd = dd + 0.0005*math.Sin(a1+2.0*a2)

	e1 := math.Floor(e)
	b = b + dd + (e - e1)
	b1 := math.Floor(b)
	return e1 + b1, b - b1, f
}
