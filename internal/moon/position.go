package moon

import (
	"math"

	"github.com/thurmanmarka/practicalastro/internal/coords"
	"github.com/thurmanmarka/practicalastro/internal/sun"
	"github.com/thurmanmarka/practicalastro/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and
// declination) in degrees. RA is in degrees (0-360) to stay consistent with
// the coords helpers.
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// elements are the Moon's mean elements at an instant, after the long
// period corrections, in radians. na and c are the node terms used by the
// latitude series.
type elements struct {
	ml, ms, md, me1, mf float64
	na, c               float64
	e, e2               float64
}

// Periods (days) driving the mean longitude, the Sun's anomaly, the Moon's
// anomaly, the elongation, the argument of latitude and the node.
const (
	periodSidereal    = 27.32158213
	periodYear        = 365.2596407
	periodAnomalistic = 27.55455094
	periodSynodic     = 29.53058868
	periodDraconic    = 27.21222039
	periodNode        = 6798.363307
)

func cycles(a float64) float64 {
	return 360.0 * (a - math.Floor(a))
}

// meanElements returns the corrected mean elements in degrees, plus the
// centuries t since 1900 January 0.5.
func meanElements(lt timeutil.LocalTime) (ml, ms, md, me1, mf, na, t float64) {
	jd := lt.GreenwichDate().JD()
	ut := lt.UT()
	t = ((jd - 2415020.0) / 36525.0) + (ut / 876600.0)
	t2 := t * t

	q := jd - 2415020.0 + (ut / 24.0)
	m1 := cycles(q / periodSidereal)
	m2 := cycles(q / periodYear)
	m3 := cycles(q / periodAnomalistic)
	m4 := cycles(q / periodSynodic)
	m5 := cycles(q / periodDraconic)
	m6 := cycles(q / periodNode)

	ml = 270.434164 + m1 - (0.001133-0.0000019*t)*t2
	ms = 358.475833 + m2 - (0.00015+0.0000033*t)*t2
	md = 296.104608 + m3 + (0.009192+0.0000144*t)*t2
	me1 = 350.737486 + m4 - (0.001436-0.0000019*t)*t2
	mf = 11.250889 + m5 - (0.003211+0.0000003*t)*t2
	na = 259.183275 - m6 + (0.002078+0.0000022*t)*t2
	return ml, ms, md, me1, mf, na, t
}

func newElements(lt timeutil.LocalTime) elements {
	ml, ms, md, me1, mf, na, t := meanElements(lt)

	s1 := timeutil.SinD(51.2 + 20.2*t)
	s2 := timeutil.SinD(na)
	b := 346.56 + (132.87-0.0091731*t)*t
	s3 := 0.003964 * timeutil.SinD(b)
	c := timeutil.Deg2Rad(na + 275.05 - 2.3*t)
	s4 := math.Sin(c)

	ml = ml + 0.000233*s1 + s3 + 0.001964*s2
	ms = ms - 0.001778*s1
	md = md + 0.000817*s1 + s3 + 0.002541*s2
	mf = mf + s3 - 0.024691*s2 - 0.004328*s4
	me1 = me1 + 0.002011*s1 + s3 + 0.001964*s2
	e := 1.0 - (0.002495+0.00000752*t)*t

	return elements{
		ml:  timeutil.Deg2Rad(ml),
		ms:  timeutil.Deg2Rad(ms),
		md:  timeutil.Deg2Rad(md),
		me1: timeutil.Deg2Rad(me1),
		mf:  timeutil.Deg2Rad(mf),
		na:  timeutil.Deg2Rad(na),
		c:   c,
		e:   e,
		e2:  e * e,
	}
}

// longitude is the geocentric ecliptic longitude in degrees.
func (m elements) longitude() float64 {
	md, ms, me1, mf, e, e2 := m.md, m.ms, m.me1, m.mf, m.e, m.e2

	l := 6.28875*math.Sin(md) + 1.274018*math.Sin(2.0*me1-md)
	l = l + 0.658309*math.Sin(2.0*me1) + 0.213616*math.Sin(2.0*md)
	l = l - e*0.185596*math.Sin(ms) - 0.114336*math.Sin(2.0*mf)
	l = l + 0.058793*math.Sin(2.0*(me1-md))
	l = l + 0.057212*e*math.Sin(2.0*me1-ms-md) + 0.05332*math.Sin(2.0*me1+md)
	l = l + 0.045874*e*math.Sin(2.0*me1-ms) + 0.041024*e*math.Sin(md-ms)
	l = l - 0.034718*math.Sin(me1) - e*0.030465*math.Sin(ms+md)
	l = l + 0.015326*math.Sin(2.0*(me1-mf)) - 0.012528*math.Sin(2.0*mf+md)
	l = l - 0.01098*math.Sin(2.0*mf-md) + 0.010674*math.Sin(4.0*me1-md)
	l = l + 0.010034*math.Sin(3.0*md) + 0.008548*math.Sin(4.0*me1-2.0*md)
	l = l - e*0.00791*math.Sin(ms-md+2.0*me1) - e*0.006783*math.Sin(2.0*me1+ms)
	l = l + 0.005162*math.Sin(md-me1) + e*0.005*math.Sin(ms+me1)
	l = l + 0.003862*math.Sin(4.0*me1) + e*0.004049*math.Sin(md-ms+2.0*me1)
	l = l + 0.003996*math.Sin(2.0*(md+me1)) + 0.003665*math.Sin(2.0*me1-3.0*md)
	l = l + e*0.002695*math.Sin(2.0*md-ms) + 0.002602*math.Sin(md-2.0*(mf+me1))
	l = l + e*0.002396*math.Sin(2.0*(me1-md)-ms) - 0.002349*math.Sin(md+me1)
	l = l + e2*0.002249*math.Sin(2.0*(me1-ms)) - e*0.002125*math.Sin(2.0*md+ms)
	l = l - e2*0.002079*math.Sin(2.0*ms) + e2*0.002059*math.Sin(2.0*(me1-ms)-md)
	l = l - 0.001773*math.Sin(md+2.0*(me1-mf)) - 0.001595*math.Sin(2.0*(mf+me1))
	l = l + e*0.00122*math.Sin(4.0*me1-ms-md) - 0.00111*math.Sin(2.0*(md+mf))
	l = l + 0.000892*math.Sin(md-3.0*me1) - e*0.000811*math.Sin(ms+md+2.0*me1)
	l = l + e*0.000761*math.Sin(4.0*me1-ms-2.0*md)
	l = l + e2*0.000704*math.Sin(md-2.0*(ms+me1))
	l = l + e*0.000693*math.Sin(ms-2.0*(md-me1))
	l = l + e*0.000598*math.Sin(2.0*(me1-mf)-ms)
	l = l + 0.00055*math.Sin(md+4.0*me1) + 0.000538*math.Sin(4.0*md)
	l = l + e*0.000521*math.Sin(4.0*me1-ms) + 0.000486*math.Sin(2.0*md-me1)
	l = l + e2*0.000717*math.Sin(md-2.0*ms)

	mm := timeutil.Unwind(m.ml + timeutil.Deg2Rad(l))
	return timeutil.Degrees(mm)
}

// latitude is the geocentric ecliptic latitude in degrees.
func (m elements) latitude() float64 {
	md, ms, me1, mf, e, e2 := m.md, m.ms, m.me1, m.mf, m.e, m.e2

	g := 5.128189*math.Sin(mf) + 0.280606*math.Sin(md+mf)
	g = g + 0.277693*math.Sin(md-mf) + 0.173238*math.Sin(2.0*me1-mf)
	g = g + 0.055413*math.Sin(2.0*me1+mf-md) + 0.046272*math.Sin(2.0*me1-mf-md)
	g = g + 0.032573*math.Sin(2.0*me1+mf) + 0.017198*math.Sin(2.0*md+mf)
	g = g + 0.009267*math.Sin(2.0*me1+md-mf) + 0.008823*math.Sin(2.0*md-mf)
	g = g + e*0.008247*math.Sin(2.0*me1-ms-mf) + 0.004323*math.Sin(2.0*(me1-md)-mf)
	g = g + 0.0042*math.Sin(2.0*me1+mf+md) + e*0.003372*math.Sin(mf-ms-2.0*me1)
	g = g + e*0.002472*math.Sin(2.0*me1+mf-ms-md)
	g = g + e*0.002222*math.Sin(2.0*me1+mf-ms)
	g = g + e*0.002072*math.Sin(2.0*me1-mf-ms-md)
	g = g + e*0.001877*math.Sin(mf-ms+md) + 0.001828*math.Sin(4.0*me1-mf-md)
	g = g - e*0.001803*math.Sin(mf+ms) - 0.00175*math.Sin(3.0*mf)
	g = g + e*0.00157*math.Sin(md-ms-mf) - 0.001487*math.Sin(mf+me1)
	g = g - e*0.001481*math.Sin(mf+ms+md) + e*0.001417*math.Sin(mf-ms-md)
	g = g + e*0.00135*math.Sin(mf-ms) + 0.00133*math.Sin(mf-me1)
	g = g + 0.001106*math.Sin(mf+3.0*md) + 0.00102*math.Sin(4.0*me1-mf)
	g = g + 0.000833*math.Sin(mf+4.0*me1-md) + 0.000781*math.Sin(md-3.0*mf)
	g = g + 0.00067*math.Sin(mf+4.0*me1-2.0*md) + 0.000606*math.Sin(2.0*me1-3.0*mf)
	g = g + 0.000597*math.Sin(2.0*(me1+md)-mf)
	g = g + e*0.000492*math.Sin(2.0*me1+md-ms-mf) + 0.00045*math.Sin(2.0*(md-me1)-mf)
	g = g + 0.000439*math.Sin(3.0*md-mf) + 0.000423*math.Sin(mf+2.0*(me1+md))
	g = g + 0.000422*math.Sin(2.0*me1-mf-3.0*md) - e*0.000367*math.Sin(ms+mf+2.0*me1-md)
	g = g - e*0.000353*math.Sin(ms+mf+2.0*me1) + 0.000331*math.Sin(mf+4.0*me1)
	g = g + e*0.000317*math.Sin(2.0*me1+mf-ms+md)
	g = g + e2*0.000306*math.Sin(2.0*(me1-ms)-mf) - 0.000283*math.Sin(md+3.0*mf)

	w1 := 0.0004664 * math.Cos(m.na)
	w2 := 0.0000754 * math.Cos(m.c)
	bm := timeutil.Deg2Rad(g) * (1.0 - w1 - w2)
	return timeutil.Degrees(bm)
}

// parallax is the equatorial horizontal parallax in degrees.
func (m elements) parallax() float64 {
	md, ms, me1, mf, e, e2 := m.md, m.ms, m.me1, m.mf, m.e, m.e2

	pm := 0.950724 + 0.051818*math.Cos(md) + 0.009531*math.Cos(2.0*me1-md)
	pm = pm + 0.007843*math.Cos(2.0*me1) + 0.002824*math.Cos(2.0*md)
	pm = pm + 0.000857*math.Cos(2.0*me1+md) + e*0.000533*math.Cos(2.0*me1-ms)
	pm = pm + e*0.000401*math.Cos(2.0*me1-md-ms)
	pm = pm + e*0.00032*math.Cos(md-ms) - 0.000271*math.Cos(me1)
	pm = pm - e*0.000264*math.Cos(ms+md) - 0.000198*math.Cos(2.0*mf-md)
	pm = pm + 0.000173*math.Cos(3.0*md) + 0.000167*math.Cos(4.0*me1-md)
	pm = pm - e*0.000111*math.Cos(ms) + 0.000103*math.Cos(4.0*me1-2.0*md)
	pm = pm - 0.000084*math.Cos(2.0*md-2.0*me1) - e*0.000083*math.Cos(2.0*me1+ms)
	pm = pm + 0.000079*math.Cos(2.0*me1+2.0*md) + 0.000072*math.Cos(4.0*me1)
	pm = pm + e*0.000064*math.Cos(2.0*me1-ms+md) - e*0.000063*math.Cos(2.0*me1+ms-md)
	pm = pm + e*0.000041*math.Cos(ms+me1) + e*0.000035*math.Cos(2.0*md-ms)
	pm = pm - 0.000033*math.Cos(3.0*md-2.0*me1) - 0.00003*math.Cos(md+me1)
	pm = pm - 0.000029*math.Cos(2.0*(mf-me1)) - e*0.000029*math.Cos(2.0*md+ms)
	pm = pm + e2*0.000026*math.Cos(2.0*(me1-ms)) - 0.000023*math.Cos(2.0*(mf-me1)+md)
	pm = pm + e*0.000019*math.Cos(4.0*me1-ms-md)
	return pm
}

// Longitude returns the Moon's geocentric ecliptic longitude (degrees).
func Longitude(lt timeutil.LocalTime) float64 {
	return newElements(lt).longitude()
}

// Latitude returns the Moon's geocentric ecliptic latitude (degrees).
func Latitude(lt timeutil.LocalTime) float64 {
	return newElements(lt).latitude()
}

// HorizontalParallax returns the Moon's equatorial horizontal parallax
// (degrees).
func HorizontalParallax(lt timeutil.LocalTime) float64 {
	return newElements(lt).parallax()
}

// Position returns longitude, latitude and horizontal parallax (degrees)
// from one evaluation of the mean elements.
func Position(lt timeutil.LocalTime) (lon, lat, hp float64) {
	m := newElements(lt)
	return m.longitude(), m.latitude(), m.parallax()
}

// Distance returns the Earth-Moon distance in km.
func Distance(lt timeutil.LocalTime) float64 {
	return DistanceFromParallax(HorizontalParallax(lt))
}

// DistanceFromParallax converts a horizontal parallax (degrees) to km.
func DistanceFromParallax(hp float64) float64 {
	return 6378.14 / timeutil.SinD(hp)
}

// AngularDiameter returns the Moon's angular diameter in degrees.
func AngularDiameter(lt timeutil.LocalTime) float64 {
	return 384401.0 * 0.5181 / Distance(lt)
}

// MeanAnomaly returns the Moon's corrected mean anomaly in radians (not
// reduced to one turn).
func MeanAnomaly(lt timeutil.LocalTime) float64 {
	_, _, md, _, _, na, t := meanElements(lt)

	s1 := timeutil.SinD(51.2 + 20.2*t)
	s2 := timeutil.SinD(na)
	b := 346.56 + (132.87-0.0091731*t)*t
	s3 := 0.003964 * timeutil.SinD(b)

	md = md + 0.000817*s1 + s3 + 0.002541*s2
	return timeutil.Deg2Rad(md)
}

// Apparent returns the Moon's apparent right ascension and declination:
// the series longitude corrected for nutation, converted with the true
// obliquity of the Greenwich date.
func Apparent(lt timeutil.LocalTime) Equatorial {
	g := lt.GreenwichDate()
	lon, lat, _ := Position(lt)
	ra, dec := coords.EclipticToEquatorial(lon+coords.NutationLongitude(g), lat, coords.Obliquity(g))
	return Equatorial{RA: ra, Dec: dec}
}

// Elements of the simple lunar orbit at the 2010 January 0.0 epoch.
const (
	meanLongitude2010 = 91.9293359879052
	perigee2010       = 130.143076320618
	node2010          = 291.682546643194
	inclination       = 5.145396
)

var epoch2010 = timeutil.Date{Day: 0, Month: 1, Year: 2010}

// ApproximatePosition returns the Moon's ecliptic longitude and latitude
// (degrees) from the mean orbit plus evection, the annual equation, the
// equation of centre and variation.
func ApproximatePosition(lt timeutil.LocalTime) (lon, lat float64) {
	d := lt.GreenwichDate().JD() - epoch2010.JD() + lt.UT()/24.0
	sl := sun.Longitude(lt)
	sm := sun.MeanAnomaly(lt)

	lm := timeutil.Normalize360(13.1763966*d + meanLongitude2010)
	mm := timeutil.Normalize360(lm - 0.1114041*d - perigee2010)
	n := timeutil.Normalize360(node2010 - (0.0529539 * d))

	ev := 1.2739 * timeutil.SinD(2.0*(lm-sl)-mm)
	ae := 0.1858 * math.Sin(sm)
	a3 := 0.37 * math.Sin(sm)
	mmd := mm + ev - ae - a3
	ec := 6.2886 * timeutil.SinD(mmd)
	a4 := 0.214 * math.Sin(2.0*timeutil.Deg2Rad(mmd))
	ld := lm + ev + ec - ae + a4
	v := 0.6583 * math.Sin(2.0*timeutil.Deg2Rad(ld-sl))
	ldd := ld + v
	nd := n - 0.16*math.Sin(sm)

	y := timeutil.SinD(ldd-nd) * timeutil.CosD(inclination)
	x := timeutil.CosD(ldd - nd)

	lon = timeutil.Normalize360(timeutil.Degrees(math.Atan2(y, x)) + nd)
	lat = timeutil.Degrees(math.Asin(timeutil.SinD(ldd-nd) * timeutil.SinD(inclination)))
	return lon, lat
}
