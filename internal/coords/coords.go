package coords

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// centuries1900 is Julian centuries since 1900 January 0.5.
func centuries1900(g timeutil.Date) float64 {
	return (g.JD() - 2415020.0) / 36525.0
}

// cycles returns 360 times the fractional part of a.
func cycles(a float64) float64 {
	return 360.0 * (a - math.Floor(a))
}

// nutationArgs holds the fundamental arguments of the short nutation series,
// in radians.
type nutationArgs struct {
	t              float64
	l2, d2, m1, m2 float64
	n1, n2         float64
}

func newNutationArgs(g timeutil.Date) nutationArgs {
	t := centuries1900(g)
	t2 := t * t

	l1 := 279.6967 + 0.000303*t2 + cycles(100.0021358*t)
	d1 := 270.4342 - 0.001133*t2 + cycles(1336.855231*t)
	m1 := 358.4758 - 0.00015*t2 + cycles(99.99736056*t)
	m2 := 296.1046 + 0.009192*t2 + cycles(1325.552359*t)
	n1 := 259.1833 + 0.002078*t2 - cycles(5.372616667*t)

	a := nutationArgs{
		t:  t,
		l2: 2.0 * timeutil.Deg2Rad(l1),
		d2: 2.0 * timeutil.Deg2Rad(d1),
		m1: timeutil.Deg2Rad(m1),
		m2: timeutil.Deg2Rad(m2),
		n1: timeutil.Deg2Rad(n1),
	}
	a.n2 = 2.0 * a.n1
	return a
}

// NutationLongitude returns the nutation in ecliptic longitude (degrees) for
// the Greenwich date g.
func NutationLongitude(g timeutil.Date) float64 {
	a := newNutationArgs(g)
	t := a.t

	dp := (-17.2327 - 0.01737*t) * math.Sin(a.n1)
	dp = dp + (-1.2729-0.00013*t)*math.Sin(a.l2) + 0.2088*math.Sin(a.n2)
	dp = dp - 0.2037*math.Sin(a.d2) + (0.1261-0.00031*t)*math.Sin(a.m1)
	dp = dp + 0.0675*math.Sin(a.m2) - (0.0497-0.00012*t)*math.Sin(a.l2+a.m1)
	dp = dp - 0.0342*math.Sin(a.d2-a.n1) - 0.0261*math.Sin(a.d2+a.m2)
	dp = dp + 0.0214*math.Sin(a.l2-a.m1) - 0.0149*math.Sin(a.l2-a.d2+a.m2)
	dp = dp + 0.0124*math.Sin(a.l2-a.n1) + 0.0114*math.Sin(a.d2-a.m2)

	return dp / 3600.0
}

// NutationObliquity returns the nutation in obliquity (degrees).
func NutationObliquity(g timeutil.Date) float64 {
	a := newNutationArgs(g)
	t := a.t

	do := (9.21 + 0.00091*t) * math.Cos(a.n1)
	do = do + (0.5522-0.00029*t)*math.Cos(a.l2) - 0.0904*math.Cos(a.n2)
	do = do + 0.0884*math.Cos(a.d2) + 0.0216*math.Cos(a.l2+a.m1)
	do = do + 0.0183*math.Cos(a.d2-a.n1) + 0.0113*math.Cos(a.d2+a.m2)
	do = do - 0.0093*math.Cos(a.l2-a.m1) - 0.0066*math.Cos(a.l2-a.n1)

	return do / 3600.0
}

// Nutation is the two-term series: nutation in longitude and in obliquity,
// both in degrees.
func Nutation(g timeutil.Date) (dpsi, deps float64) {
	t := centuries1900(g)

	a := 100.0021358 * t
	l := 279.6967 + (0.000303 * t * t)
	l = timeutil.Normalize360(l + 360.0*(a-math.Floor(a)))
	lr := timeutil.Deg2Rad(l)

	b := 5.372617 * t
	n := timeutil.Normalize360(259.1833 - 360.0*(b-math.Floor(b)))
	nr := timeutil.Deg2Rad(n)

	dpsi = -17.2*math.Sin(nr) - 1.3*math.Sin(2.0*lr)
	deps = 9.2*math.Cos(nr) + 0.5*math.Cos(2.0*lr)
	return dpsi / 3600.0, deps / 3600.0
}

// Obliquity returns the true obliquity of the ecliptic (degrees) on the
// Greenwich date g, nutation included.
func Obliquity(g timeutil.Date) float64 {
	c := centuries1900(g) - 1.0
	d := c * (46.815 + c*(0.0006-(c*0.00181)))
	return 23.43929167 - d/3600.0 + NutationObliquity(g)
}

// MeanObliquity returns the mean obliquity (degrees) from the J2000
// polynomial, without nutation.
func MeanObliquity(g timeutil.Date) float64 {
	t := (g.JD() - 2451545.0) / 36525.0
	de := t * (46.815 + t*(0.0006-(t*0.00181)))
	return 23.439292 - de/3600.0
}

// -----------------------------
// Rotations
// -----------------------------

// EclipticToEquatorial converts ecliptic longitude/latitude (degrees) to
// right ascension (degrees, 0-360) and declination for obliquity eps.
func EclipticToEquatorial(lon, lat, eps float64) (ra, dec float64) {
	a := timeutil.Deg2Rad(lon)
	b := timeutil.Deg2Rad(lat)
	c := timeutil.Deg2Rad(eps)

	d := math.Sin(b)*math.Cos(c) + math.Cos(b)*math.Sin(c)*math.Sin(a)
	dec = timeutil.Degrees(math.Asin(d))

	y := math.Sin(a)*math.Cos(c) - math.Tan(b)*math.Sin(c)
	ra = timeutil.Normalize360(timeutil.Degrees(math.Atan2(y, math.Cos(a))))
	return ra, dec
}

// EquatorialToEcliptic converts right ascension (degrees) and declination to
// ecliptic longitude (0-360) and latitude for obliquity eps.
func EquatorialToEcliptic(ra, dec, eps float64) (lon, lat float64) {
	a := timeutil.Deg2Rad(ra)
	b := timeutil.Deg2Rad(dec)
	c := timeutil.Deg2Rad(eps)

	d := math.Sin(b)*math.Cos(c) - math.Cos(b)*math.Sin(c)*math.Sin(a)
	lat = timeutil.Degrees(math.Asin(d))

	y := math.Sin(a)*math.Cos(c) + math.Tan(b)*math.Sin(c)
	lon = timeutil.Normalize360(timeutil.Degrees(math.Atan2(y, math.Cos(a))))
	return lon, lat
}

// EquatorialToHorizon converts hour angle (hours) and declination (degrees)
// to azimuth (0-360) and altitude at latitude lat.
func EquatorialToHorizon(ha, dec, lat float64) (az, alt float64) {
	c := timeutil.Deg2Rad(ha * 15.0)
	e := timeutil.Deg2Rad(dec)
	f := timeutil.Deg2Rad(lat)

	g := math.Sin(e)*math.Sin(f) + math.Cos(e)*math.Cos(f)*math.Cos(c)
	h := -math.Cos(e) * math.Cos(f) * math.Sin(c)
	i := math.Sin(e) - (math.Sin(f) * g)

	az = timeutil.Normalize360(timeutil.Degrees(math.Atan2(h, i)))
	alt = timeutil.Degrees(math.Asin(g))
	return az, alt
}

// HorizonToEquatorial converts azimuth and altitude (degrees) to hour angle
// (hours, 0-24) and declination at latitude lat.
func HorizonToEquatorial(az, alt, lat float64) (ha, dec float64) {
	c := timeutil.Deg2Rad(az)
	d := timeutil.Deg2Rad(alt)
	e := timeutil.Deg2Rad(lat)

	f := math.Sin(d)*math.Sin(e) + math.Cos(d)*math.Cos(e)*math.Cos(c)
	g := -math.Cos(d) * math.Cos(e) * math.Sin(c)
	h := math.Sin(d) - math.Sin(e)*f

	ha = timeutil.Normalize24(timeutil.Degrees(math.Atan2(g, h)) / 15.0)
	dec = timeutil.Degrees(math.Asin(f))
	return ha, dec
}

// Galactic north pole and node, degrees (B1950).
const (
	galPoleRA   = 192.25
	galPoleDec  = 27.4
	galNodeLong = 33.0
)

// EquatorialToGalactic converts right ascension (degrees) and declination to
// galactic longitude (0-360) and latitude.
func EquatorialToGalactic(ra, dec float64) (l, b float64) {
	a := timeutil.Deg2Rad(ra)
	d := timeutil.Deg2Rad(dec)
	p := timeutil.Deg2Rad(galPoleDec)
	n := a - timeutil.Deg2Rad(galPoleRA)

	sinB := math.Cos(d)*math.Cos(p)*math.Cos(n) + math.Sin(d)*math.Sin(p)
	b = timeutil.Degrees(math.Asin(sinB))

	y := math.Sin(d) - sinB*math.Sin(p)
	x := math.Cos(d) * math.Sin(n) * math.Cos(p)
	l = timeutil.Normalize360(timeutil.Degrees(math.Atan2(y, x)) + galNodeLong)
	return l, b
}

// GalacticToEquatorial converts galactic longitude and latitude (degrees) to
// right ascension (degrees, 0-360) and declination.
func GalacticToEquatorial(l, b float64) (ra, dec float64) {
	gl := timeutil.Deg2Rad(l)
	gb := timeutil.Deg2Rad(b)
	p := timeutil.Deg2Rad(galPoleDec)
	n := gl - timeutil.Deg2Rad(galNodeLong)

	sinDec := math.Cos(gb)*math.Cos(p)*math.Sin(n) + math.Sin(gb)*math.Sin(p)
	dec = timeutil.Degrees(math.Asin(sinDec))

	y := math.Cos(gb) * math.Cos(n)
	x := math.Sin(gb)*math.Cos(p) - math.Cos(gb)*math.Sin(p)*math.Sin(n)
	ra = timeutil.Normalize360(timeutil.Degrees(math.Atan2(y, x)) + galPoleRA)
	return ra, dec
}

// -----------------------------
// Sidereal helpers
// -----------------------------

// LocalSiderealTime returns the local sidereal time (hours) at local civil
// time lt and longitude lon (degrees, east positive).
func LocalSiderealTime(lt timeutil.LocalTime, lon float64) float64 {
	gst := timeutil.UTToGST(lt.UT(), lt.GreenwichDate())
	return timeutil.GSTToLST(gst, lon)
}

// HourAngle converts right ascension (hours) to hour angle at lt and lon.
func HourAngle(ra float64, lt timeutil.LocalTime, lon float64) float64 {
	h := LocalSiderealTime(lt, lon) - ra
	if h < 0 {
		return 24.0 + h
	}
	return h
}

// RightAscension converts hour angle (hours) to right ascension. The
// relation is symmetric with HourAngle.
func RightAscension(ha float64, lt timeutil.LocalTime, lon float64) float64 {
	return HourAngle(ha, lt, lon)
}

// Separation returns the angle (degrees) between two points given by their
// longitudes/right ascensions and latitudes/declinations, all in degrees.
func Separation(a1, d1, a2, d2 float64) float64 {
	b := timeutil.Deg2Rad(a1)
	d := timeutil.Deg2Rad(d1)
	f := timeutil.Deg2Rad(a2)
	h := timeutil.Deg2Rad(d2)
	i := math.Acos(math.Sin(d)*math.Sin(h) + math.Cos(d)*math.Cos(h)*math.Cos(b-f))
	return timeutil.Degrees(i)
}
